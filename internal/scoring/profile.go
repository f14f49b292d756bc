package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/types"
)

// Profile scores the general fit of a candidate profile. Without a
// requirement the score is a standalone quality measure of experience,
// skill breadth, and education. With a requirement, experience is
// scored against the minimum in tiers, skills through a piecewise curve
// worth up to 40 points plus a 10-point optional bonus, and any
// education adds a flat 20.
func (s *Scorer) Profile(p types.CandidateProfile, req *types.JobRequirement) types.ScoreBreakdown {
	if req == nil {
		score := clip(10*minF(3, p.YearsExperience) +
			2*minF(20, float64(len(p.Skills))) +
			10*minF(3, float64(len(p.Education))))
		return types.ScoreBreakdown{
			Score:     score,
			Rationale: fmt.Sprintf("standalone profile: %.0f years experience, %d skills, %d education entries", p.YearsExperience, len(p.Skills), len(p.Education)),
		}
	}

	var score float64
	var parts []string

	expScore := experienceTier(p.YearsExperience, req.ExperienceMin)
	score += expScore
	parts = append(parts, fmt.Sprintf("experience %.1f years against minimum %d (%.0f pts)", p.YearsExperience, req.ExperienceMin, expScore))

	if len(req.RequiredSkills) > 0 {
		matched, _ := s.matcher.Match(p.Skills, req.RequiredSkills)
		skillScore := profileSkillCurve(ratio(len(matched), len(req.RequiredSkills)))
		score += skillScore
		parts = append(parts, fmt.Sprintf("required skills %d/%d (%.1f pts)", len(matched), len(req.RequiredSkills), skillScore))

		if len(req.OptionalSkills) > 0 {
			optMatched, _ := s.matcher.Match(p.Skills, req.OptionalSkills)
			score += profileOptionalCurve(ratio(len(optMatched), len(req.OptionalSkills)))
		}
	} else {
		score += minF(50, float64(len(p.Skills))*2)
		parts = append(parts, fmt.Sprintf("%d skills listed", len(p.Skills)))
	}

	if len(p.Education) > 0 {
		score += educationBonus
		parts = append(parts, "education present")
	}

	return types.ScoreBreakdown{
		Score:     clip(score),
		Rationale: strings.Join(parts, "; "),
	}
}

const educationBonus = 20

// experienceTier awards 30/20/10/0 points at 100%/70%/50% of the
// required minimum. A requirement without a minimum always awards the
// full tier.
func experienceTier(years float64, min int) float64 {
	m := float64(min)
	switch {
	case years >= m:
		return 30
	case years >= 0.7*m:
		return 20
	case years >= 0.5*m:
		return 10
	default:
		return 0
	}
}

// profileSkillCurve maps the required-skill ratio to 0-40 points.
func profileSkillCurve(r float64) float64 {
	switch {
	case r >= 1:
		return 40
	case r >= 0.9:
		return 36 + (r-0.9)*40
	case r >= 0.75:
		return 30 + (r-0.75)*40
	case r >= 0.6:
		return 22 + (r-0.6)*53.33
	case r >= 0.5:
		return 15 + (r-0.5)*70
	default:
		return r * 30
	}
}

// profileOptionalCurve maps the optional-skill ratio to 0-10 bonus points.
func profileOptionalCurve(r float64) float64 {
	switch {
	case r >= 0.8:
		return 10
	case r >= 0.6:
		return 7 + (r-0.6)*15
	case r >= 0.4:
		return 4 + (r-0.4)*15
	default:
		return r * 10
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
