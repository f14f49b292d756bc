package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/docstore"
	"github.com/jonathan/candidate-screener/internal/logger"
)

var addCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add candidate documents to the data directory",
	Long:  "Copy one or more candidate documents into the data directory under fresh opaque identifiers, and print the stored id of each. Run 'screener index' afterwards to make them searchable.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// runAdd only needs the document store, not the full engine wiring.
func runAdd(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	docs, err := docstore.New(cfg.DataDir, log)
	if err != nil {
		return err
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		stored, err := docs.Save(filepath.Base(path), data)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", path, stored)
	}
	return nil
}
