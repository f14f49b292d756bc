// Package llm abstracts the answer-generation providers used for
// retrieval-augmented questions. Providers are optional: when none is
// configured or every provider fails, callers fall back to
// retrieval-only mode and surface raw chunk text instead.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoProvider is returned by an empty Chain.
var ErrNoProvider = errors.New("no llm provider configured")

// Provider answers a question grounded in retrieved document context.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string
	// Answer generates a grounded answer. docContext carries the
	// retrieved chunks already formatted as plain text.
	Answer(ctx context.Context, docContext, question string) (string, error)
}

// answerPrompt is shared by all providers so switching providers never
// changes the grounding contract.
func answerPrompt(docContext, question string) string {
	return fmt.Sprintf(`You are an assistant answering questions about a pool of candidate documents.
Use only the context below. If the context does not contain the answer, say so.

Context:
%s

Question: %s

Answer:`, docContext, question)
}
