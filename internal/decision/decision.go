// Package decision aggregates the three criterion scores into a ranked,
// justified shortlist and the final evaluation report.
package decision

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

const (
	strengthThreshold = 70.0
	weaknessThreshold = 50.0
	topCandidates     = 3
	rationaleMaxLen   = 100
)

// GlobalScore combines the three criterion scores with the fixed
// 0.3/0.4/0.3 weighting, rounded to two decimals.
func GlobalScore(profile, technical, softSkill float64) float64 {
	score := profile*types.WeightProfile +
		technical*types.WeightTechnical +
		softSkill*types.WeightSoftSkill
	return math.Round(score*100) / 100
}

// RecommendationFor maps a global score to its recommendation tier.
func RecommendationFor(global float64) types.Recommendation {
	switch {
	case global >= types.ThresholdStrong:
		return types.StronglyRecommended
	case global >= types.ThresholdRecom:
		return types.Recommended
	case global >= types.ThresholdsConsid:
		return types.ToConsider
	default:
		return types.ToReject
	}
}

// Rank computes the global score, recommendation, and justification for
// every evaluation and returns a new slice sorted by global score
// descending. Ties keep their input order.
func Rank(evals []types.RankedEvaluation) []types.RankedEvaluation {
	ranked := make([]types.RankedEvaluation, len(evals))
	copy(ranked, evals)
	for i := range ranked {
		e := &ranked[i]
		e.GlobalScore = GlobalScore(e.ProfileScore.Score, e.TechnicalScore.Score, e.SoftSkillScore.Score)
		e.Recommendation = RecommendationFor(e.GlobalScore)
		e.Justification = justification(e)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GlobalScore > ranked[j].GlobalScore
	})
	return ranked
}

// Report assembles the final report over an already ranked slice. An
// empty slice yields the documented sentinel report, not an error.
func Report(ranked []types.RankedEvaluation, req types.JobRequirement) types.EvaluationReport {
	if len(ranked) == 0 {
		return types.EvaluationReport{
			Summary:     types.EmptyReportSummary,
			Requirement: req,
		}
	}

	n := float64(len(ranked))
	stats := types.ReportStats{
		TotalCandidates: len(ranked),
		MaxGlobal:       ranked[0].GlobalScore,
		MinGlobal:       ranked[0].GlobalScore,
	}
	for _, e := range ranked {
		stats.MeanGlobal += e.GlobalScore / n
		stats.MeanProfile += e.ProfileScore.Score / n
		stats.MeanTechnical += e.TechnicalScore.Score / n
		stats.MeanSoftSkill += e.SoftSkillScore.Score / n
		if e.GlobalScore > stats.MaxGlobal {
			stats.MaxGlobal = e.GlobalScore
		}
		if e.GlobalScore < stats.MinGlobal {
			stats.MinGlobal = e.GlobalScore
		}
	}

	top := ranked
	if len(top) > topCandidates {
		top = top[:topCandidates]
	}

	return types.EvaluationReport{
		Summary:       summary(ranked, req, stats),
		Stats:         stats,
		TopCandidates: top,
		Requirement:   req,
	}
}

func justification(e *types.RankedEvaluation) string {
	lines := []string{
		"Candidate: " + candidateLabel(e),
		fmt.Sprintf("Global score: %.1f/100", e.GlobalScore),
		"Recommendation: " + string(e.Recommendation),
		"",
		"Score detail:",
		fmt.Sprintf("- Profile: %.1f/100 - %s", e.ProfileScore.Score, truncate(e.ProfileScore.Rationale)),
		fmt.Sprintf("- Technical: %.1f/100 - %s", e.TechnicalScore.Score, truncate(e.TechnicalScore.Rationale)),
		fmt.Sprintf("- Soft skills: %.1f/100 - %s", e.SoftSkillScore.Score, truncate(e.SoftSkillScore.Rationale)),
		"",
		"Strengths:",
	}
	if e.TechnicalScore.Score >= strengthThreshold {
		lines = append(lines, "+ strong technical match")
	}
	if e.SoftSkillScore.Score >= strengthThreshold {
		lines = append(lines, "+ solid soft skills")
	}
	if e.ProfileScore.Score >= strengthThreshold {
		lines = append(lines, "+ experienced profile")
	}
	if e.TechnicalScore.Score < weaknessThreshold {
		lines = append(lines, "- technical skills below expectations")
	}
	if e.SoftSkillScore.Score < weaknessThreshold {
		lines = append(lines, "- soft skills to develop")
	}
	if len(e.MissingSkills) > 0 {
		lines = append(lines, "- missing skills: "+strings.Join(e.MissingSkills, ", "))
	}
	return strings.Join(lines, "\n")
}

func summary(ranked []types.RankedEvaluation, req types.JobRequirement, stats types.ReportStats) string {
	lines := []string{
		"Evaluation report for position: " + req.Title,
		"",
		fmt.Sprintf("Candidates evaluated: %d", stats.TotalCandidates),
		fmt.Sprintf("Mean score: %.1f/100", stats.MeanGlobal),
		"",
		"Top candidates:",
	}
	for i, e := range ranked {
		if i == topCandidates {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %.1f/100 (%s)", i+1, candidateLabel(&e), e.GlobalScore, e.Recommendation))
	}
	return strings.Join(lines, "\n")
}

func candidateLabel(e *types.RankedEvaluation) string {
	if e.Profile.Name != "" && e.Profile.Name != types.NameNotFound {
		return e.Profile.Name
	}
	if e.Profile.ID != "" {
		return e.Profile.ID
	}
	return e.SourceName
}

func truncate(s string) string {
	if len(s) > rationaleMaxLen {
		return s[:rationaleMaxLen]
	}
	return s
}
