package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/types"
)

var requirementCmd = &cobra.Command{
	Use:   "requirement",
	Short: "Extract a structured requirement from a job description",
	Long:  "Extract title, seniority, experience, skills, languages, location, salary and contract from a job description text file and print the structured requirement as JSON.",
	RunE:  runRequirement,
}

var (
	reqInputFile  string
	reqOutputFile string
	reqHintsFile  string
)

func init() {
	requirementCmd.Flags().StringVarP(&reqInputFile, "in", "i", "", "Path to job description text file (required)")
	requirementCmd.Flags().StringVarP(&reqOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	requirementCmd.Flags().StringVar(&reqHintsFile, "hints", "", "Path to JSON file with recruiter overrides")
	_ = requirementCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(requirementCmd)
}

func runRequirement(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	jobText, err := os.ReadFile(reqInputFile)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	var hints *types.RequirementHints
	if reqHintsFile != "" {
		data, err := os.ReadFile(reqHintsFile)
		if err != nil {
			return fmt.Errorf("read hints: %w", err)
		}
		hints = &types.RequirementHints{}
		if err := json.Unmarshal(data, hints); err != nil {
			return fmt.Errorf("parse hints: %w", err)
		}
	}

	req, err := a.engine.ExtractRequirement(string(jobText), hints)
	if err != nil {
		return err
	}

	if a.cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRequirement(&req)
	}
	return writeJSON(reqOutputFile, req)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
