package retrieval

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/types"
)

// Indexer is the subset of the chunk store the builder needs.
type Indexer interface {
	Reset(ctx context.Context) error
	Insert(ctx context.Context, source, content string) error
}

// ProgressFunc receives progress in percent together with the current
// step name and a human message.
type ProgressFunc func(progress int, step, message string)

// Builder rebuilds the semantic index from a set of raw documents.
type Builder struct {
	indexer Indexer
	log     *zap.Logger

	ChunkWords   int
	OverlapWords int
}

func NewBuilder(indexer Indexer, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		indexer:      indexer,
		log:          log,
		ChunkWords:   DefaultChunkWords,
		OverlapWords: DefaultOverlapWords,
	}
}

// Build resets the index and inserts every document chunk by chunk.
// progress may be nil.
func (b *Builder) Build(ctx context.Context, docs []types.RawDocument, progress ProgressFunc) error {
	report := func(p int, step, msg string) {
		if progress != nil {
			progress(p, step, msg)
		}
	}

	report(0, "reset", "clearing previous index")
	if err := b.indexer.Reset(ctx); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	report(10, "chunk", fmt.Sprintf("indexing %d documents", len(docs)))
	for i, doc := range docs {
		chunks := Chunk(doc.Text, b.ChunkWords, b.OverlapWords)
		for _, chunk := range chunks {
			if err := b.indexer.Insert(ctx, doc.SourceName, chunk); err != nil {
				return fmt.Errorf("build index: document %s: %w", doc.SourceName, err)
			}
		}
		b.log.Debug("document indexed",
			zap.String("source", doc.SourceName),
			zap.Int("chunks", len(chunks)))
		pct := 10 + (i+1)*85/max(1, len(docs))
		report(pct, "chunk", fmt.Sprintf("indexed %s (%d chunks)", doc.SourceName, len(chunks)))
	}

	report(100, "done", fmt.Sprintf("index built from %d documents", len(docs)))
	return nil
}
