// Package resolve turns an evaluation request into the concrete list of
// candidate documents to score, through a three-tier fallback chain:
// explicit identifiers, semantic search, then full enumeration.
package resolve

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/retrieval"
	"github.com/jonathan/candidate-screener/internal/types"
)

// Mode selects the first resolution tier to attempt.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeExplicit Mode = "ids"
	ModeSemantic Mode = "semantic"
	ModeAll      Mode = "all"
)

// DefaultLimit bounds a resolution run when the caller gives none.
const DefaultLimit = 10

const topRequiredSkills = 3

// Documents is the document-store surface the resolver needs.
type Documents interface {
	List(exts ...string) ([]string, error)
	ReadDocument(name string) (string, error)
}

// Result carries the resolved documents plus the explicit identifiers
// that matched nothing. Unmatched identifiers are informational, never
// an error.
type Result struct {
	Documents []types.RawDocument
	Unmatched []string
}

// Resolver owns the deduplicated document list for one evaluation run.
// searcher may be nil, in which case the semantic tier is skipped.
type Resolver struct {
	docs     Documents
	searcher retrieval.Searcher
	lib      *patterns.Library
	log      *zap.Logger
}

func NewResolver(docs Documents, searcher retrieval.Searcher, lib *patterns.Library, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{docs: docs, searcher: searcher, lib: lib, log: log}
}

// Resolve runs the tier chain starting at mode. Each later tier is
// attempted only when the previous one yields nothing. The returned
// documents carry unique source names and full (never chunked) text.
func (r *Resolver) Resolve(ctx context.Context, req *types.JobRequirement, mode Mode, ids []string, limit int) (Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var res Result
	if (mode == ModeAuto || mode == ModeExplicit) && len(ids) > 0 {
		docs, unmatched, err := r.resolveExplicit(ids, limit)
		if err != nil {
			return Result{}, err
		}
		res.Unmatched = unmatched
		if len(docs) > 0 {
			res.Documents = docs
			return res, nil
		}
	}

	if mode == ModeAuto || mode == ModeExplicit || mode == ModeSemantic {
		if r.searcher != nil && req != nil {
			docs, err := r.resolveSemantic(ctx, req, limit)
			if err != nil {
				r.log.Warn("semantic resolution unavailable, falling back to enumeration", zap.Error(err))
			} else if len(docs) > 0 {
				res.Documents = docs
				return res, nil
			}
		}
	}

	docs, err := r.resolveAll(limit)
	if err != nil {
		return Result{}, err
	}
	res.Documents = docs
	return res, nil
}

// resolveExplicit matches each requested identifier against, in order:
// the stored document name, the filename or its stem (exact or prefix),
// and finally the local part of an email found in the document text.
func (r *Resolver) resolveExplicit(ids []string, limit int) ([]types.RawDocument, []string, error) {
	names, err := r.docs.List()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve candidates: %w", err)
	}

	var (
		docs      []types.RawDocument
		unmatched []string
		taken     = map[string]bool{}
	)
	for _, id := range ids {
		if len(docs) >= limit {
			unmatched = append(unmatched, id)
			continue
		}
		name := r.matchIdentifier(id, names, taken)
		if name == "" {
			unmatched = append(unmatched, id)
			continue
		}
		text, err := r.docs.ReadDocument(name)
		if err != nil {
			r.log.Warn("resolved document unreadable", zap.String("name", name), zap.Error(err))
			unmatched = append(unmatched, id)
			continue
		}
		taken[name] = true
		docs = append(docs, types.RawDocument{
			ID:         docStem(name),
			SourceName: name,
			Text:       text,
			Similarity: 1.0,
		})
	}
	return docs, unmatched, nil
}

func (r *Resolver) matchIdentifier(id string, names []string, taken map[string]bool) string {
	want := strings.ToLower(strings.TrimSpace(id))
	if want == "" {
		return ""
	}

	for _, name := range names {
		if !taken[name] && strings.ToLower(name) == want {
			return name
		}
	}
	for _, name := range names {
		if taken[name] {
			continue
		}
		lower := strings.ToLower(name)
		stem := docStem(lower)
		if stem == want || strings.HasPrefix(lower, want) || strings.HasPrefix(stem, want) {
			return name
		}
	}
	for _, name := range names {
		if taken[name] {
			continue
		}
		text, err := r.docs.ReadDocument(name)
		if err != nil {
			continue
		}
		email := r.lib.Email.FindString(text)
		if email == "" {
			continue
		}
		local := strings.ToLower(email[:strings.Index(email, "@")])
		if strings.Contains(local, want) {
			return name
		}
	}
	return ""
}

// resolveSemantic queries the retrieval collaborator with the job title
// and leading required skills, collapses chunk hits to unique source
// files, and reloads each file's full text.
func (r *Resolver) resolveSemantic(ctx context.Context, req *types.JobRequirement, limit int) ([]types.RawDocument, error) {
	query := semanticQuery(req)
	hits, err := r.searcher.Search(ctx, query, 2*limit)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}

	var (
		docs []types.RawDocument
		seen = map[string]bool{}
	)
	for _, hit := range hits {
		if len(docs) >= limit {
			break
		}
		name := baseName(hit.Source)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		text, err := r.docs.ReadDocument(name)
		if err != nil {
			r.log.Warn("indexed document unreadable", zap.String("name", name), zap.Error(err))
			continue
		}
		docs = append(docs, types.RawDocument{
			ID:         docStem(name),
			SourceName: name,
			Text:       text,
			Similarity: hit.Similarity,
		})
	}
	return docs, nil
}

func (r *Resolver) resolveAll(limit int) ([]types.RawDocument, error) {
	names, err := r.docs.List()
	if err != nil {
		return nil, fmt.Errorf("resolve candidates: %w", err)
	}
	var docs []types.RawDocument
	for _, name := range names {
		if len(docs) >= limit {
			break
		}
		text, err := r.docs.ReadDocument(name)
		if err != nil {
			r.log.Warn("document unreadable, skipping", zap.String("name", name), zap.Error(err))
			continue
		}
		docs = append(docs, types.RawDocument{
			ID:         docStem(name),
			SourceName: name,
			Text:       text,
			Similarity: 1.0,
		})
	}
	return docs, nil
}

func semanticQuery(req *types.JobRequirement) string {
	parts := []string{req.Title}
	skills := req.RequiredSkills
	if len(skills) > topRequiredSkills {
		skills = skills[:topRequiredSkills]
	}
	parts = append(parts, skills...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// baseName normalizes an indexed source reference to a plain filename,
// whichever path separator it was stored with.
func baseName(source string) string {
	source = strings.TrimSpace(strings.ReplaceAll(source, "\\", "/"))
	if source == "" {
		return ""
	}
	return path.Base(source)
}

func docStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
