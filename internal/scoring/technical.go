package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

// TechnicalScore is the technical scorer result: the score with its
// rationale plus the matched and missing required-skill lists kept for
// justification text.
type TechnicalScore struct {
	Breakdown types.ScoreBreakdown
	Matched   []string
	Missing   []string
}

// Technical scores how well the candidate's skills cover the required
// and optional skill sets. The required-match ratio drives 0-70 points
// through a piecewise curve that flattens near full coverage, with a
// flat +5 when every required skill matched; the optional ratio adds up
// to 30 points through its own curve.
func (s *Scorer) Technical(p types.CandidateProfile, req types.JobRequirement) TechnicalScore {
	matched, missing := s.matcher.Match(p.Skills, req.RequiredSkills)
	optMatched, _ := s.matcher.Match(p.Skills, req.OptionalSkills)

	var score float64
	switch {
	case len(req.RequiredSkills) == 0 && len(req.OptionalSkills) == 0:
		score = 50
	case len(req.RequiredSkills) == 0:
		score = 100 * ratio(len(optMatched), len(req.OptionalSkills))
	default:
		score = requiredCurve(ratio(len(matched), len(req.RequiredSkills)))
		if len(missing) == 0 {
			score += fullMatchBonus
		}
		score += optionalCurve(ratio(len(optMatched), len(req.OptionalSkills)))
	}
	score = clip(score)

	return TechnicalScore{
		Breakdown: types.ScoreBreakdown{
			Score:     score,
			Rationale: technicalRationale(score, matched, missing, optMatched),
		},
		Matched: matched,
		Missing: missing,
	}
}

const fullMatchBonus = 5

// requiredCurve maps the required-skill match ratio to 0-70 points.
// Linear scoring punishes a single missing skill too hard on short
// requirement lists, so the curve stays flat near full coverage and
// steepens below 60%.
func requiredCurve(r float64) float64 {
	switch {
	case r >= 1:
		return 70
	case r >= 0.9:
		return 65 + (r-0.9)*50
	case r >= 0.75:
		return 55 + (r-0.75)*(10/0.15)
	case r >= 0.6:
		return 40 + (r-0.6)*100
	case r >= 0.5:
		return 25 + (r-0.5)*150
	default:
		return r * 50
	}
}

// optionalCurve maps the optional-skill match ratio to 0-30 points.
func optionalCurve(r float64) float64 {
	switch {
	case r >= 0.8:
		return 30
	case r >= 0.6:
		return 20 + (r-0.6)*50
	case r >= 0.4:
		return 10 + (r-0.4)*50
	default:
		return r * 25
	}
}

func technicalRationale(score float64, matched, missing, optMatched []string) string {
	var parts []string
	switch {
	case score >= 80:
		parts = append(parts, "excellent technical fit")
	case score >= 60:
		parts = append(parts, "good technical fit")
	case score >= 40:
		parts = append(parts, "acceptable technical fit")
	default:
		parts = append(parts, "insufficient technical fit")
	}
	total := len(matched) + len(missing)
	if total > 0 {
		parts = append(parts, fmt.Sprintf("required skills matched %d/%d", len(matched), total))
	}
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(capList(missing, 5), ", "))
	}
	if len(optMatched) > 0 {
		parts = append(parts, "optional: "+strings.Join(capList(optMatched, 5), ", "))
	}
	return strings.Join(parts, "; ")
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func clip(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
