// Package scoring holds the three candidate scorers. Every scorer is a
// pure function of its inputs: same profile and requirement in, same
// score and rationale out.
package scoring

import (
	"strings"

	"github.com/jonathan/candidate-screener/internal/patterns"
)

// minSubstringLen guards the substring rule so two-letter fragments like
// "go" inside "mongodb" cannot create a match.
const minSubstringLen = 3

// Matcher applies the shared skill-identity rules: exact normalized
// match, then substring in either direction, then shared-token overlap
// for multi-word skills.
type Matcher struct {
	lib *patterns.Library
}

// NewMatcher builds a Matcher over the given pattern library; nil falls
// back to patterns.Default().
func NewMatcher(lib *patterns.Library) *Matcher {
	if lib == nil {
		lib = patterns.Default()
	}
	return &Matcher{lib: lib}
}

// Match splits wanted into the skills the candidate has and the skills
// they are missing, preserving the order of wanted.
func (m *Matcher) Match(candidate, wanted []string) (matched, missing []string) {
	norm := make([]string, len(candidate))
	for i, s := range candidate {
		norm[i] = m.lib.NormalizeSkill(s)
	}
	for _, want := range wanted {
		if m.hasSkill(norm, m.lib.NormalizeSkill(want)) {
			matched = append(matched, want)
		} else {
			missing = append(missing, want)
		}
	}
	return matched, missing
}

func (m *Matcher) hasSkill(candidateNorm []string, want string) bool {
	for _, have := range candidateNorm {
		if skillsMatch(have, want) {
			return true
		}
	}
	return false
}

func skillsMatch(have, want string) bool {
	if have == want {
		return true
	}
	shorter := have
	if len(want) < len(shorter) {
		shorter = want
	}
	if len(shorter) >= minSubstringLen &&
		(strings.Contains(have, want) || strings.Contains(want, have)) {
		return true
	}
	haveTokens := strings.Fields(have)
	wantTokens := strings.Fields(want)
	if len(haveTokens) < 2 || len(wantTokens) < 2 {
		return false
	}
	need := len(wantTokens) - 1
	if need > 2 {
		need = 2
	}
	shared := 0
	for _, wt := range wantTokens {
		for _, ht := range haveTokens {
			if wt == ht {
				shared++
				break
			}
		}
	}
	return shared >= need
}
