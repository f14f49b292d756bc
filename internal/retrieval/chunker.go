package retrieval

import "strings"

const (
	// DefaultChunkWords is the word-window size used for indexing.
	DefaultChunkWords = 200
	// DefaultOverlapWords is the window overlap between adjacent chunks.
	DefaultOverlapWords = 40
)

// Chunk splits text into overlapping word windows. size and overlap
// are in words; non-positive values fall back to the defaults, and an
// overlap equal to or larger than size is clamped to size-1 so the
// window always advances. Whitespace-only text yields no chunks.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkWords
	}
	if overlap < 0 {
		overlap = DefaultOverlapWords
	}
	if overlap >= size {
		overlap = size - 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
