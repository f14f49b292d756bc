// Package retrieval provides semantic search over candidate documents:
// a word-window chunker, an embedding client, a pgvector-backed chunk
// store, and the index builder that ties them together.
package retrieval

import "context"

// Hit is one retrieved chunk. Similarity is an opaque relevance score
// in [0,1], higher is closer; it is not a calibrated probability.
type Hit struct {
	Source     string  `json:"source"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// Searcher is the retrieval collaborator consumed by the resolver and
// the question-answering path. Search may return fewer than k hits, or
// none at all.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]Hit, error)
}

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
