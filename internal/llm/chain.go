package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Chain tries providers in order and returns the first successful
// answer. A provider failure is logged and the next provider is tried;
// only when every provider fails does the caller see an error.
type Chain struct {
	providers []Provider
	log       *zap.Logger
}

// NewChain builds a fallback chain over the given providers, kept in
// order. A nil logger is replaced with a no-op one.
func NewChain(log *zap.Logger, providers ...Provider) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{providers: providers, log: log}
}

// Name lists the chained provider names.
func (c *Chain) Name() string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Available reports whether the chain has at least one provider.
func (c *Chain) Available() bool { return len(c.providers) > 0 }

// Answer walks the providers in order.
func (c *Chain) Answer(ctx context.Context, docContext, question string) (string, error) {
	if len(c.providers) == 0 {
		return "", ErrNoProvider
	}
	var errs []error
	for _, p := range c.providers {
		answer, err := p.Answer(ctx, docContext, question)
		if err == nil {
			return answer, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.log.Warn("llm provider failed, trying next",
			zap.String("provider", p.Name()),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return "", errors.Join(errs...)
}
