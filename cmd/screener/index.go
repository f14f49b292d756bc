package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/jobs"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the semantic index over stored candidate documents",
	Long:  "Read every candidate document in the data directory, chunk and embed it, and store the chunks in the PostgreSQL vector index used for semantic candidate resolution. Requires DATABASE_URL and GEMINI_API_KEY.",
	RunE:  runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	id := a.engine.SubmitIndexBuild(cmd.Context())
	fmt.Fprintf(os.Stderr, "job %s submitted\n", id)

	job, err := followJob(cmd, a, id)
	if err != nil {
		return err
	}
	if job.Status == jobs.StatusError {
		return fmt.Errorf("index build failed: %s", job.Error)
	}
	fmt.Println("index built")
	return nil
}
