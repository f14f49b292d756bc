package docstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestSaveAndReadText(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save("cv_jean.txt", []byte("JEAN DUPONT\nData Scientist"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".txt"))
	assert.NotEqual(t, "cv_jean.txt", name)

	text, err := s.ReadText(name)
	require.NoError(t, err)
	assert.Equal(t, "JEAN DUPONT\nData Scientist", text)
}

func TestListFiltersByExtension(t *testing.T) {
	s := newTestStore(t)

	for _, f := range []string{"a.txt", "b.pdf", "c.html", "d.png", "e.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), f), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "sub"), 0o755))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.pdf", "c.html", "e.md"}, names)

	only, err := s.List(".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, only)
}

func TestReadHTMLText(t *testing.T) {
	s := newTestStore(t)

	html := `<html><head><style>p{color:red}</style></head>
<body><h1>MARIE CURIE</h1><p>Data Scientist</p><script>alert(1)</script></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "cv.html"), []byte(html), 0o644))

	text, err := s.ReadHTMLText("cv.html")
	require.NoError(t, err)
	assert.Contains(t, text, "MARIE CURIE")
	assert.Contains(t, text, "Data Scientist")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
}

func TestReadDocumentDispatch(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "cv.txt"), []byte("plain"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "cv.html"), []byte("<p>markup</p>"), 0o644))

	text, err := s.ReadDocument("cv.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain", text)

	text, err = s.ReadDocument("cv.html")
	require.NoError(t, err)
	assert.Equal(t, "markup", text)
}

func TestReadMissingDocument(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadText("missing.txt")
	assert.Error(t, err)
	_, err = s.ReadPDFText("missing.pdf")
	assert.Error(t, err)
}

func TestPathEscapesAreConfined(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "inside.txt"), []byte("ok"), 0o644))

	text, err := s.ReadText("../inside.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
