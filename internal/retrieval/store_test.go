package retrieval

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constEmbedder struct{ vec []float32 }

func (c constEmbedder) Embed(context.Context, string) ([]float32, error) {
	return c.vec, nil
}

// Exercised only against a live Postgres with the pgvector extension.
func TestStoreRoundTrip(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()

	vec := make([]float32, embeddingDims)
	vec[0] = 1
	store, err := NewStore(ctx, url, constEmbedder{vec: vec}, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Reset(ctx))
	require.NoError(t, store.Insert(ctx, "alice.txt", "python developer"))

	hits, err := store.Search(ctx, "python", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "alice.txt", hits[0].Source)
	assert.Equal(t, "python developer", hits[0].Content)
	assert.InDelta(t, 1.0, hits[0].Similarity, 0.01)
}
