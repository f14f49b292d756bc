package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question over the indexed candidate documents",
	Long:  "Run a semantic search over the indexed candidate documents and answer the question with the configured LLM providers, falling back to the raw retrieved passages when none is available.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var askHits int

func init() {
	askCmd.Flags().IntVarP(&askHits, "hits", "k", 0, "Number of passages to retrieve")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	answer, err := a.engine.Ask(cmd.Context(), strings.Join(args, " "), askHits)
	if err != nil {
		return err
	}

	fmt.Println(answer.Text)
	if len(answer.Sources) > 0 {
		fmt.Printf("\nSources: %s (confidence %.0f%%)\n",
			strings.Join(answer.Sources, ", "), answer.Confidence*100)
	}
	if !answer.Generated {
		fmt.Println("(retrieval-only answer: no LLM provider available)")
	}
	return nil
}
