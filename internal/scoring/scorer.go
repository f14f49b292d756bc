package scoring

import "github.com/jonathan/candidate-screener/internal/patterns"

// Scorer bundles the three criterion scorers over one pattern library.
// It is stateless apart from the tables and safe for concurrent use.
type Scorer struct {
	lib     *patterns.Library
	matcher *Matcher
}

// NewScorer builds a Scorer; a nil library falls back to
// patterns.Default().
func NewScorer(lib *patterns.Library) *Scorer {
	if lib == nil {
		lib = patterns.Default()
	}
	return &Scorer{lib: lib, matcher: NewMatcher(lib)}
}
