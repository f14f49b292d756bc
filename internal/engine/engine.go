// Package engine wires the extractors, scorers, resolver, retrieval and
// LLM collaborators into the operations the outer layers consume.
package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/decision"
	"github.com/jonathan/candidate-screener/internal/jobs"
	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/profile"
	"github.com/jonathan/candidate-screener/internal/requirement"
	"github.com/jonathan/candidate-screener/internal/resolve"
	"github.com/jonathan/candidate-screener/internal/retrieval"
	"github.com/jonathan/candidate-screener/internal/scoring"
	"github.com/jonathan/candidate-screener/internal/types"
)

// DefaultWorkers bounds per-candidate parallelism inside one evaluation run.
const DefaultWorkers = 4

// Documents is the document-store surface the engine needs for index
// builds and enumeration.
type Documents interface {
	List(exts ...string) ([]string, error)
	ReadDocument(name string) (string, error)
}

// Config carries the engine's collaborators. Searcher, Builder and
// Answerer are optional; their absence degrades the matching features
// instead of disabling the engine.
type Config struct {
	Library  *patterns.Library
	Docs     Documents
	Resolver *resolve.Resolver
	Searcher retrieval.Searcher
	Builder  *retrieval.Builder
	Answerer llm.Provider
	Tracker  *jobs.Tracker
	Logger   *zap.Logger
	Workers  int
}

type Engine struct {
	requirements *requirement.Extractor
	profiles     *profile.Extractor
	scorer       *scoring.Scorer
	docs         Documents
	resolver     *resolve.Resolver
	searcher     retrieval.Searcher
	builder      *retrieval.Builder
	answerer     llm.Provider
	tracker      *jobs.Tracker
	log          *zap.Logger
	workers      int
}

func New(cfg Config) *Engine {
	lib := cfg.Library
	if lib == nil {
		lib = patterns.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = jobs.NewTracker()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Engine{
		requirements: requirement.NewExtractor(lib, log),
		profiles:     profile.NewExtractor(lib, log),
		scorer:       scoring.NewScorer(lib),
		docs:         cfg.Docs,
		resolver:     cfg.Resolver,
		searcher:     cfg.Searcher,
		builder:      cfg.Builder,
		answerer:     cfg.Answerer,
		tracker:      tracker,
		log:          log,
		workers:      workers,
	}
}

// Tracker exposes the job tracker for polling.
func (e *Engine) Tracker() *jobs.Tracker { return e.tracker }

// ExtractRequirement turns free job text plus optional recruiter hints
// into a structured requirement.
func (e *Engine) ExtractRequirement(jobText string, hints *types.RequirementHints) (types.JobRequirement, error) {
	return e.requirements.Extract(jobText, hints)
}

// ResolveCandidates returns the candidate documents for one run.
func (e *Engine) ResolveCandidates(ctx context.Context, req *types.JobRequirement, mode resolve.Mode, ids []string, limit int) (resolve.Result, error) {
	return e.resolver.Resolve(ctx, req, mode, ids, limit)
}

// EvaluateOne extracts a profile from one document and scores it
// against the requirement. Pure with respect to its inputs. An empty
// coverLetter falls back to the letter embedded in the document, or the
// document itself when no letter marker is found.
func (e *Engine) EvaluateOne(doc types.RawDocument, coverLetter string, req types.JobRequirement) types.RankedEvaluation {
	p := e.profiles.Extract(doc.Text)
	if coverLetter == "" {
		coverLetter = embeddedLetter(doc.Text)
	}

	profileScore := e.scorer.Profile(p, &req)
	technical := e.scorer.Technical(p, req)
	soft := e.scorer.SoftSkills(coverLetter, p)

	global := decision.GlobalScore(profileScore.Score, technical.Breakdown.Score, soft.Breakdown.Score)
	eval := types.RankedEvaluation{
		Profile:        p,
		SourceName:     doc.SourceName,
		Similarity:     doc.Similarity,
		ProfileScore:   profileScore,
		TechnicalScore: technical.Breakdown,
		SoftSkillScore: soft.Breakdown,
		MissingSkills:  technical.Missing,
		SoftSkillTags:  soft.Tags,
		GlobalScore:    global,
		Recommendation: decision.RecommendationFor(global),
	}
	return eval
}

// RankAndReport orders the evaluations and produces the final report.
func (e *Engine) RankAndReport(evals []types.RankedEvaluation, req types.JobRequirement) ([]types.RankedEvaluation, types.EvaluationReport) {
	ranked := decision.Rank(evals)
	return ranked, decision.Report(ranked, req)
}

// letterMarkers locate an embedded cover letter inside a submitted
// document; without one the whole text stands in.
var letterMarkers = []string{"lettre de motivation", "cover letter", "motivation letter"}

func embeddedLetter(text string) string {
	lower := strings.ToLower(text)
	for _, marker := range letterMarkers {
		if i := strings.Index(lower, marker); i >= 0 {
			return strings.TrimSpace(text[i+len(marker):])
		}
	}
	return text
}
