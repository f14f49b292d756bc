// Package docstore reads and stores candidate documents on the local
// filesystem: plain text, PDF (via MuPDF), and HTML exports.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CandidateExtensions are the document types the store serves by default.
var CandidateExtensions = []string{".pdf", ".txt", ".md", ".html"}

// Store is a directory of candidate documents. All names are plain
// basenames; the store never serves paths outside its directory.
type Store struct {
	dir string
	log *zap.Logger
}

// New opens (creating if needed) a document store rooted at dir.
func New(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document store %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// List returns the sorted basenames of stored documents matching the
// given extensions (CandidateExtensions when none are given).
func (s *Store) List(exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = CandidateExtensions
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				names = append(names, entry.Name())
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadText returns the raw text content of a stored document.
func (s *Store) ReadText(name string) (string, error) {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", name, err)
	}
	return string(b), nil
}

// ReadPDFText extracts the text of every page of a stored PDF.
func (s *Store) ReadPDFText(name string) (string, error) {
	doc, err := fitz.New(s.path(name))
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", name, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("extract pdf %s page %d: %w", name, n, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// ReadHTMLText extracts the visible text of a stored HTML document.
func (s *Store) ReadHTMLText(name string) (string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", name, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("parse html %s: %w", name, err)
	}
	doc.Find("script, style, noscript").Remove()
	return collapseBlankLines(doc.Text()), nil
}

// ReadDocument dispatches on the file extension and returns plain text.
func (s *Store) ReadDocument(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return s.ReadPDFText(name)
	case ".html", ".htm":
		return s.ReadHTMLText(name)
	default:
		return s.ReadText(name)
	}
}

// Save stores data under a fresh opaque name that keeps the original
// extension, and returns that stored name.
func (s *Store) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return "", fmt.Errorf("save document %s: %w", originalName, err)
	}
	s.log.Info("document saved",
		zap.String("original", originalName),
		zap.String("stored", name),
		zap.Int("bytes", len(data)))
	return name, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

func collapseBlankLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
