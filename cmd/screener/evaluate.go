package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-screener/internal/engine"
	"github.com/jonathan/candidate-screener/internal/jobs"
	"github.com/jonathan/candidate-screener/internal/observability"
	"github.com/jonathan/candidate-screener/internal/resolve"
	"github.com/jonathan/candidate-screener/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate candidates against a job description",
	Long:  "Submit an evaluation run, follow its progress, and print the ranked candidates with scores, recommendations and the aggregate report.",
	RunE:  runEvaluate,
}

var (
	evalInputFile  string
	evalOutputFile string
	evalHintsFile  string
	evalMode       string
	evalIDs        []string
	evalLimit      int
)

const pollInterval = 200 * time.Millisecond

func init() {
	evaluateCmd.Flags().StringVarP(&evalInputFile, "in", "i", "", "Path to job description text file (required)")
	evaluateCmd.Flags().StringVarP(&evalOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	evaluateCmd.Flags().StringVar(&evalHintsFile, "hints", "", "Path to JSON file with recruiter overrides")
	evaluateCmd.Flags().StringVar(&evalMode, "mode", string(resolve.ModeAuto), "Resolution mode: auto, ids, semantic, all")
	evaluateCmd.Flags().StringSliceVar(&evalIDs, "id", nil, "Candidate identifier (repeatable)")
	evaluateCmd.Flags().IntVar(&evalLimit, "limit", 0, "Maximum candidates to evaluate")
	_ = evaluateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	jobText, err := os.ReadFile(evalInputFile)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	var hints *types.RequirementHints
	if evalHintsFile != "" {
		data, err := os.ReadFile(evalHintsFile)
		if err != nil {
			return fmt.Errorf("read hints: %w", err)
		}
		hints = &types.RequirementHints{}
		if err := json.Unmarshal(data, hints); err != nil {
			return fmt.Errorf("parse hints: %w", err)
		}
	}

	limit := evalLimit
	if limit == 0 {
		limit = a.cfg.Limit
	}
	id := a.engine.SubmitEvaluation(cmd.Context(), engine.EvaluationParams{
		JobText: string(jobText),
		Hints:   hints,
		Mode:    resolve.Mode(evalMode),
		IDs:     evalIDs,
		Limit:   limit,
	})
	fmt.Fprintf(os.Stderr, "job %s submitted\n", id)

	job, err := followJob(cmd, a, id)
	if err != nil {
		return err
	}
	if job.Status == jobs.StatusError {
		return fmt.Errorf("evaluation failed: %s", job.Error)
	}

	result, ok := job.Result.(engine.EvaluationResult)
	if !ok {
		return fmt.Errorf("unexpected result payload %T", job.Result)
	}
	for _, missed := range result.Unmatched {
		fmt.Fprintf(os.Stderr, "warning: candidate id %q matched no document\n", missed)
	}
	if a.cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRequirement(&result.Requirement)
		printer.PrintRanking(result.Ranked)
		printer.PrintReport(&result.Report)
	}
	return writeJSON(evalOutputFile, result)
}

// followJob polls the tracker until the job reaches a terminal state,
// echoing each progress change.
func followJob(cmd *cobra.Command, a *app, id string) (jobs.Job, error) {
	lastProgress := -1
	for {
		job, err := a.engine.Job(id)
		if err != nil {
			return jobs.Job{}, err
		}
		if job.Progress != lastProgress {
			lastProgress = job.Progress
			fmt.Fprintf(os.Stderr, "  %3d%% %-20s %s\n", job.Progress, job.Step, job.Message)
		}
		if job.Status != jobs.StatusRunning {
			return job, nil
		}
		select {
		case <-cmd.Context().Done():
			return jobs.Job{}, cmd.Context().Err()
		case <-time.After(pollInterval):
		}
	}
}
