package engine

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-screener/internal/jobs"
	"github.com/jonathan/candidate-screener/internal/resolve"
	"github.com/jonathan/candidate-screener/internal/types"
)

// EvaluationParams describes one submitted evaluation run.
type EvaluationParams struct {
	JobText string                  `json:"job_text"`
	Hints   *types.RequirementHints `json:"hints,omitempty"`
	Mode    resolve.Mode            `json:"mode,omitempty"`
	IDs     []string                `json:"ids,omitempty"`
	Limit   int                     `json:"limit,omitempty"`
}

// EvaluationResult is the payload stored on a completed evaluation job.
type EvaluationResult struct {
	Requirement types.JobRequirement     `json:"requirement"`
	Ranked      []types.RankedEvaluation `json:"ranked"`
	Report      types.EvaluationReport   `json:"report"`
	Unmatched   []string                 `json:"unmatched_ids,omitempty"`
}

// SubmitEvaluation starts an evaluation run in the background and
// returns its job id immediately. Progress is observable through Job.
func (e *Engine) SubmitEvaluation(ctx context.Context, params EvaluationParams) string {
	id := e.tracker.Create(jobs.KindEvaluation)
	go e.runEvaluation(ctx, id, params)
	return id
}

// SubmitIndexBuild starts a semantic index rebuild over every stored
// document and returns its job id immediately.
func (e *Engine) SubmitIndexBuild(ctx context.Context) string {
	id := e.tracker.Create(jobs.KindIndexBuild)
	go e.runIndexBuild(ctx, id)
	return id
}

// Job returns a snapshot of a tracked job.
func (e *Engine) Job(id string) (jobs.Job, error) {
	return e.tracker.Get(id)
}

// runEvaluation executes one evaluation job. Every internal failure
// lands in the job's error state, never in the submitter.
func (e *Engine) runEvaluation(ctx context.Context, id string, params EvaluationParams) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("evaluation job panicked", zap.String("job", id), zap.Any("panic", r))
			_ = e.tracker.Fail(id, fmt.Errorf("internal failure: %v", r))
		}
	}()

	_ = e.tracker.Update(id, 5, "extract_requirement", "analyzing job description")
	req, err := e.ExtractRequirement(params.JobText, params.Hints)
	if err != nil {
		_ = e.tracker.Fail(id, err)
		return
	}

	_ = e.tracker.Update(id, 15, "resolve", "resolving candidate documents")
	res, err := e.ResolveCandidates(ctx, &req, params.Mode, params.IDs, params.Limit)
	if err != nil {
		_ = e.tracker.Fail(id, err)
		return
	}
	for _, missed := range res.Unmatched {
		e.log.Warn("candidate id not matched", zap.String("job", id), zap.String("id", missed))
	}

	_ = e.tracker.Update(id, 20, "evaluate_candidates",
		fmt.Sprintf("evaluating %d candidates", len(res.Documents)))
	evals, err := e.evaluateAll(ctx, id, req, res.Documents)
	if err != nil {
		_ = e.tracker.Fail(id, err)
		return
	}

	_ = e.tracker.Update(id, 90, "rank", "ranking candidates")
	ranked, report := e.RankAndReport(evals, req)

	_ = e.tracker.Update(id, 95, "report", "building report")
	_ = e.tracker.Complete(id, EvaluationResult{
		Requirement: req,
		Ranked:      ranked,
		Report:      report,
		Unmatched:   res.Unmatched,
	})
	e.log.Info("evaluation completed",
		zap.String("job", id),
		zap.Int("candidates", len(ranked)))
}

// evaluateAll scores candidates in parallel. Output order matches the
// resolver's order regardless of completion order.
func (e *Engine) evaluateAll(ctx context.Context, id string, req types.JobRequirement, docs []types.RawDocument) ([]types.RankedEvaluation, error) {
	evals := make([]types.RankedEvaluation, len(docs))

	var (
		mu   sync.Mutex
		done int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			evals[i] = e.EvaluateOne(doc, "", req)

			// The tracker update stays under the mutex so a slower
			// worker cannot publish a smaller progress value after a
			// faster one.
			mu.Lock()
			done++
			progress := 20 + done*70/len(docs)
			_ = e.tracker.Update(id, progress, "evaluate_candidates",
				fmt.Sprintf("evaluated %s (%d/%d)", doc.SourceName, done, len(docs)))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return evals, nil
}

func (e *Engine) runIndexBuild(ctx context.Context, id string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("index build job panicked", zap.String("job", id), zap.Any("panic", r))
			_ = e.tracker.Fail(id, fmt.Errorf("internal failure: %v", r))
		}
	}()

	if e.builder == nil {
		_ = e.tracker.Fail(id, fmt.Errorf("no index builder configured"))
		return
	}

	_ = e.tracker.Update(id, 2, "list", "listing documents")
	names, err := e.docs.List()
	if err != nil {
		_ = e.tracker.Fail(id, err)
		return
	}

	docs := make([]types.RawDocument, 0, len(names))
	for _, name := range names {
		text, err := e.docs.ReadDocument(name)
		if err != nil {
			e.log.Warn("document unreadable, not indexed", zap.String("name", name), zap.Error(err))
			continue
		}
		docs = append(docs, types.RawDocument{SourceName: name, Text: text})
	}

	// Builder progress spans 0-100; shift above the listing step so the
	// job's progress never regresses.
	err = e.builder.Build(ctx, docs, func(progress int, step, message string) {
		_ = e.tracker.Update(id, 5+progress*95/100, step, message)
	})
	if err != nil {
		_ = e.tracker.Fail(id, err)
		return
	}
	_ = e.tracker.Complete(id, map[string]int{"documents": len(docs)})
}
