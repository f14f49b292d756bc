package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/types"
)

// DefaultAskHits is the number of chunks retrieved to answer a question.
const DefaultAskHits = 5

// Ask answers a free question over the indexed documents. With an LLM
// provider configured the retrieved chunks ground a generated answer;
// without one (or when every provider fails) the raw chunk text is
// returned as-is, flagged as not generated.
func (e *Engine) Ask(ctx context.Context, question string, k int) (types.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return types.Answer{}, fmt.Errorf("ask: empty question")
	}
	if e.searcher == nil {
		return types.Answer{}, fmt.Errorf("ask: no retrieval service configured")
	}
	if k <= 0 {
		k = DefaultAskHits
	}

	hits, err := e.searcher.Search(ctx, question, k)
	if err != nil {
		return types.Answer{}, fmt.Errorf("ask: %w", err)
	}
	if len(hits) == 0 {
		return types.Answer{Text: "no relevant documents found"}, nil
	}

	var (
		sb      strings.Builder
		sources []string
		seen    = map[string]bool{}
		total   float64
	)
	for _, hit := range hits {
		fmt.Fprintf(&sb, "[%s]\n%s\n\n", hit.Source, hit.Content)
		total += hit.Similarity
		if !seen[hit.Source] {
			seen[hit.Source] = true
			sources = append(sources, hit.Source)
		}
	}
	answer := types.Answer{
		Sources:    sources,
		Confidence: total / float64(len(hits)),
	}

	if e.answerer != nil {
		text, err := e.answerer.Answer(ctx, sb.String(), question)
		if err == nil {
			answer.Text = text
			answer.Generated = true
			return answer, nil
		}
		e.log.Warn("llm providers unavailable, serving retrieval-only answer", zap.Error(err))
	}
	answer.Text = strings.TrimSpace(sb.String())
	return answer, nil
}
