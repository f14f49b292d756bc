package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/types"
)

// SoftSkillScore is the soft-skill scorer result, keeping the three
// sub-scores and the detected trait tags for justification text.
type SoftSkillScore struct {
	Breakdown     types.ScoreBreakdown
	Tags          []string
	Motivation    float64
	Communication float64
	Leadership    float64
}

// Soft-skill sub-score weights.
const (
	wMotivation    = 0.4
	wCommunication = 0.3
	wLeadership    = 0.2
	wTags          = 0.1
)

// SoftSkills scores interpersonal signals from the cover letter and the
// résumé. coverLetter may be empty; motivation then floors at 30.
func (s *Scorer) SoftSkills(coverLetter string, p types.CandidateProfile) SoftSkillScore {
	motivation := s.motivationScore(coverLetter)
	communication := s.communicationScore(coverLetter, p.RawText)
	leadership := s.leadershipScore(p)
	tags := s.detectTags(coverLetter, p.RawText)

	tagScore := minF(100, float64(len(tags))*10)
	score := clip(wMotivation*motivation +
		wCommunication*communication +
		wLeadership*leadership +
		wTags*tagScore)

	rationale := fmt.Sprintf("motivation %.0f, communication %.0f, leadership %.0f", motivation, communication, leadership)
	if len(tags) > 0 {
		rationale += "; traits: " + strings.Join(tags, ", ")
	}

	return SoftSkillScore{
		Breakdown:     types.ScoreBreakdown{Score: score, Rationale: rationale},
		Tags:          tags,
		Motivation:    motivation,
		Communication: communication,
		Leadership:    leadership,
	}
}

const (
	absentLetterScore  = 30
	minLetterLen       = 50
	personalLetterLen  = 200
	letterBandLow      = 200
	letterBandHigh     = 800
	shortLetterLen     = 100
	salutationWindow   = 100
	positiveCap        = 30
	leadershipBase     = 30
	leadershipCap      = 40
	leadershipTitlePts = 10
)

// motivationScore rates the cover letter: base 50, up to +30 for
// positive keywords, -10 per negative keyword, +10 when long enough to
// be personalized. A missing or tiny letter floors at 30.
func (s *Scorer) motivationScore(letter string) float64 {
	if len(letter) < minLetterLen {
		return absentLetterScore
	}
	lower := strings.ToLower(letter)

	score := 50.0
	score += minF(positiveCap, float64(patterns.CountAny(lower, s.lib.PositiveKeywords))*5)
	score -= float64(patterns.CountAny(lower, s.lib.NegativeKeywords)) * 10
	if len(letter) > personalLetterLen {
		score += 10
	}
	return clip(score)
}

// communicationScore rates structure: salutation near the top, a length
// inside the expected band, a professional closing, and résumé section
// coverage at 5 points per section.
func (s *Scorer) communicationScore(letter, cv string) float64 {
	score := 50.0

	if letter != "" {
		lower := strings.ToLower(letter)
		head := lower
		if len(head) > salutationWindow {
			head = head[:salutationWindow]
		}
		if patterns.HasAny(head, s.lib.Salutations) {
			score += 10
		}
		if len(letter) >= letterBandLow && len(letter) <= letterBandHigh {
			score += 10
		} else if len(letter) < shortLetterLen {
			score -= 20
		}
		if patterns.HasAny(lower, s.lib.Closings) {
			score += 10
		}
	}

	if cv != "" {
		lower := strings.ToLower(cv)
		for _, group := range s.lib.ResumeSections {
			if patterns.HasAny(lower, group.Keywords) {
				score += 5
			}
		}
	}
	return clip(score)
}

// leadershipScore rates leadership signals: keyword presence in the
// résumé capped at 40 points over a base of 30, plus 10 per experience
// entry held under a leadership title.
func (s *Scorer) leadershipScore(p types.CandidateProfile) float64 {
	score := float64(leadershipBase)
	lower := strings.ToLower(p.RawText)
	score += minF(leadershipCap, float64(patterns.CountAny(lower, s.lib.LeadershipKeywords))*5)
	for _, exp := range p.Experience {
		if patterns.HasAny(strings.ToLower(exp.Title), s.lib.LeadershipTitles) {
			score += leadershipTitlePts
		}
	}
	return clip(score)
}

// detectTags returns the soft-skill group names present in the combined
// cover-letter and résumé text, in table order.
func (s *Scorer) detectTags(letter, cv string) []string {
	text := strings.ToLower(letter + " " + cv)
	var tags []string
	for _, group := range s.lib.SoftSkills {
		if patterns.HasAny(text, group.Keywords) {
			tags = append(tags, group.Name)
		}
	}
	return tags
}
