package retrieval

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestChunkShortText(t *testing.T) {
	chunks := Chunk("just a few words here", 200, 40)
	require.Len(t, chunks, 1)
	assert.Equal(t, "just a few words here", chunks[0])
}

func TestChunkEmpty(t *testing.T) {
	assert.Empty(t, Chunk("", 200, 40))
	assert.Empty(t, Chunk("   \n\t ", 200, 40))
}

func TestChunkWindowsOverlap(t *testing.T) {
	chunks := Chunk(words(10), 4, 2)
	require.Equal(t, []string{
		"w0 w1 w2 w3",
		"w2 w3 w4 w5",
		"w4 w5 w6 w7",
		"w6 w7 w8 w9",
	}, chunks)
}

func TestChunkLastWindowReachesEnd(t *testing.T) {
	chunks := Chunk(words(9), 4, 2)
	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasSuffix(chunks[len(chunks)-1], "w8"))
}

func TestChunkOverlapClamped(t *testing.T) {
	// overlap >= size must still make progress
	chunks := Chunk(words(8), 3, 5)
	require.NotEmpty(t, chunks)
	assert.True(t, strings.HasSuffix(chunks[len(chunks)-1], "w7"))
	assert.Less(t, len(chunks), 20)
}

func TestChunkCoversEveryWord(t *testing.T) {
	text := words(57)
	seen := map[string]bool{}
	for _, c := range Chunk(text, 10, 3) {
		for _, w := range strings.Fields(c) {
			seen[w] = true
		}
	}
	assert.Len(t, seen, 57)
}
