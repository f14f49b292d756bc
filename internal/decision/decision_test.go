package decision

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-screener/internal/types"
)

func eval(name string, profile, technical, soft float64) types.RankedEvaluation {
	return types.RankedEvaluation{
		Profile:        types.CandidateProfile{Name: name},
		ProfileScore:   types.ScoreBreakdown{Score: profile},
		TechnicalScore: types.ScoreBreakdown{Score: technical},
		SoftSkillScore: types.ScoreBreakdown{Score: soft},
	}
}

func TestGlobalScore(t *testing.T) {
	tests := []struct {
		profile, technical, soft float64
		expected                 float64
	}{
		{100, 100, 100, 100},
		{0, 0, 0, 0},
		{50, 50, 50, 50},
		{80, 90, 70, 81},          // 24 + 36 + 21
		{33.33, 66.67, 50, 51.67}, // 9.999 + 26.668 + 15 = 51.667 -> 51.67
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, GlobalScore(tt.profile, tt.technical, tt.soft), 0.001)
	}
}

func TestRecommendationFor(t *testing.T) {
	assert.Equal(t, types.StronglyRecommended, RecommendationFor(80))
	assert.Equal(t, types.StronglyRecommended, RecommendationFor(95.5))
	assert.Equal(t, types.Recommended, RecommendationFor(79.99))
	assert.Equal(t, types.Recommended, RecommendationFor(65))
	assert.Equal(t, types.ToConsider, RecommendationFor(64.99))
	assert.Equal(t, types.ToConsider, RecommendationFor(50))
	assert.Equal(t, types.ToReject, RecommendationFor(49.99))
	assert.Equal(t, types.ToReject, RecommendationFor(0))
}

func TestRankSortsDescending(t *testing.T) {
	ranked := Rank([]types.RankedEvaluation{
		eval("low", 20, 20, 20),
		eval("high", 90, 90, 90),
		eval("mid", 60, 60, 60),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Profile.Name)
	assert.Equal(t, "mid", ranked[1].Profile.Name)
	assert.Equal(t, "low", ranked[2].Profile.Name)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].GlobalScore, ranked[i].GlobalScore)
	}
}

func TestRankStableOnTies(t *testing.T) {
	var evals []types.RankedEvaluation
	for i := 0; i < 6; i++ {
		evals = append(evals, eval(fmt.Sprintf("cand-%d", i), 70, 70, 70))
	}
	ranked := Rank(evals)
	for i := range ranked {
		assert.Equal(t, fmt.Sprintf("cand-%d", i), ranked[i].Profile.Name)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []types.RankedEvaluation{eval("a", 10, 10, 10), eval("b", 90, 90, 90)}
	_ = Rank(in)
	assert.Equal(t, "a", in[0].Profile.Name)
	assert.Zero(t, in[0].GlobalScore)
}

func TestJustificationContent(t *testing.T) {
	e := eval("Jean Dupont", 75, 85, 40)
	e.MissingSkills = []string{"Rust"}

	ranked := Rank([]types.RankedEvaluation{e})
	j := ranked[0].Justification

	assert.Contains(t, j, "Candidate: Jean Dupont")
	assert.Contains(t, j, "Recommendation: "+string(ranked[0].Recommendation))
	assert.Contains(t, j, "+ strong technical match")
	assert.Contains(t, j, "+ experienced profile")
	assert.Contains(t, j, "- soft skills to develop")
	assert.Contains(t, j, "- missing skills: Rust")
	assert.NotContains(t, j, "+ solid soft skills")
}

func TestReport(t *testing.T) {
	req := types.JobRequirement{Title: "Data Engineer"}
	ranked := Rank([]types.RankedEvaluation{
		eval("a", 90, 90, 90),
		eval("b", 70, 70, 70),
		eval("c", 50, 50, 50),
		eval("d", 30, 30, 30),
	})

	report := Report(ranked, req)

	assert.Equal(t, 4, report.Stats.TotalCandidates)
	assert.InDelta(t, 90.0, report.Stats.MaxGlobal, 0.001)
	assert.InDelta(t, 30.0, report.Stats.MinGlobal, 0.001)
	assert.InDelta(t, 60.0, report.Stats.MeanGlobal, 0.001)
	assert.InDelta(t, 60.0, report.Stats.MeanTechnical, 0.001)
	require.Len(t, report.TopCandidates, 3)
	assert.Equal(t, "a", report.TopCandidates[0].Profile.Name)
	assert.Contains(t, report.Summary, "Data Engineer")
	assert.Contains(t, report.Summary, "Candidates evaluated: 4")
}

func TestReportEmptyInput(t *testing.T) {
	req := types.JobRequirement{Title: "Data Engineer"}

	report := Report(nil, req)

	assert.Equal(t, types.EmptyReportSummary, report.Summary)
	assert.Zero(t, report.Stats.TotalCandidates)
	assert.Empty(t, report.TopCandidates)
	assert.Equal(t, req, report.Requirement)
}
