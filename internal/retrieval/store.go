package retrieval

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
	"go.uber.org/zap"
)

const embeddingDims = 768

// Store keeps document chunks and their embeddings in Postgres with the
// pgvector extension, and serves cosine nearest-neighbor search.
type Store struct {
	pool     *pgxpool.Pool
	embedder Embedder
	log      *zap.Logger
}

// NewStore connects to databaseURL and registers the vector types on
// every pooled connection.
func NewStore(ctx context.Context, databaseURL string, embedder Embedder, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("retrieval store: parse database url: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("retrieval store: connect: %w", err)
	}
	return &Store{pool: pool, embedder: embedder, log: log}, nil
}

// Init creates the extension and the chunk table if missing.
func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS document_chunks (
			id         bigserial PRIMARY KEY,
			source     text NOT NULL,
			content    text NOT NULL,
			embedding  vector(%d) NOT NULL
		)`, embeddingDims),
		`CREATE INDEX IF NOT EXISTS document_chunks_source_idx ON document_chunks (source)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("retrieval store: init: %w", err)
		}
	}
	return nil
}

// Reset drops all indexed chunks, typically before a rebuild.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `TRUNCATE document_chunks`); err != nil {
		return fmt.Errorf("retrieval store: reset: %w", err)
	}
	return nil
}

// Insert embeds one chunk and stores it under its source name.
func (s *Store) Insert(ctx context.Context, source, content string) error {
	vec, err := s.embedder.Embed(ctx, content)
	if err != nil {
		return fmt.Errorf("retrieval store: embed chunk of %s: %w", source, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO document_chunks (source, content, embedding) VALUES ($1, $2, $3)`,
		source, content, pgvector.NewVector(vec))
	if err != nil {
		return fmt.Errorf("retrieval store: insert chunk of %s: %w", source, err)
	}
	return nil
}

// Search embeds the query and returns the k nearest chunks by cosine
// distance, most similar first.
func (s *Store) Search(ctx context.Context, query string, k int) ([]Hit, error) {
	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retrieval store: embed query: %w", err)
	}
	rows, err := s.pool.Query(ctx,
		`SELECT source, content, 1 - (embedding <=> $1) AS similarity
		 FROM document_chunks
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		pgvector.NewVector(vec), k)
	if err != nil {
		return nil, fmt.Errorf("retrieval store: search: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.Source, &h.Content, &h.Similarity); err != nil {
			return nil, fmt.Errorf("retrieval store: scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("retrieval store: search rows: %w", err)
	}
	s.log.Debug("semantic search",
		zap.String("query", query),
		zap.Int("k", k),
		zap.Int("hits", len(hits)))
	return hits, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
