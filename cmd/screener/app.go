package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/config"
	"github.com/jonathan/candidate-screener/internal/docstore"
	"github.com/jonathan/candidate-screener/internal/engine"
	"github.com/jonathan/candidate-screener/internal/llm"
	"github.com/jonathan/candidate-screener/internal/logger"
	"github.com/jonathan/candidate-screener/internal/patterns"
	"github.com/jonathan/candidate-screener/internal/resolve"
	"github.com/jonathan/candidate-screener/internal/retrieval"
)

// app bundles the wired engine with the resources the commands must
// release when done.
type app struct {
	cfg    config.Config
	engine *engine.Engine
	log    *zap.Logger

	store    *retrieval.Store
	embedder *retrieval.GeminiEmbedder
	gemini   *llm.Gemini
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		DataDir:         config.DefaultDataDir,
		GeminiModel:     llm.DefaultGeminiModel,
		OpenRouterModel: llm.DefaultOpenRouterModel,
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp wires the engine from configuration. The semantic index and
// LLM providers are optional: without them the engine degrades to
// enumeration and retrieval-only answers.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	docs, err := docstore.New(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	lib := patterns.Default()

	var gemini *llm.Gemini
	if cfg.GeminiAPIKey != "" {
		gemini, err = llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		a.gemini = gemini
	}

	var providers []llm.Provider
	if gemini != nil {
		providers = append(providers, gemini)
	}
	if cfg.OpenRouterAPIKey != "" {
		router, err := llm.NewOpenRouter(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
		if err != nil {
			return nil, err
		}
		providers = append(providers, router)
	}
	var answerer llm.Provider
	if len(providers) > 0 {
		answerer = llm.NewChain(log, providers...)
	}

	var (
		searcher retrieval.Searcher
		builder  *retrieval.Builder
	)
	if cfg.DatabaseURL != "" && cfg.GeminiAPIKey != "" {
		embedder, err := retrieval.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, err
		}
		a.embedder = embedder
		store, err := retrieval.NewStore(ctx, cfg.DatabaseURL, embedder, log)
		if err != nil {
			return nil, err
		}
		if err := store.Init(ctx); err != nil {
			store.Close()
			return nil, err
		}
		a.store = store
		searcher = store
		builder = retrieval.NewBuilder(store, log)
	} else {
		log.Info("semantic index disabled", zap.Bool("database", cfg.DatabaseURL != ""))
	}

	a.engine = engine.New(engine.Config{
		Library:  lib,
		Docs:     docs,
		Resolver: resolve.NewResolver(docs, searcher, lib, log),
		Searcher: searcher,
		Builder:  builder,
		Answerer: answerer,
		Logger:   log,
		Workers:  cfg.Workers,
	})
	return a, nil
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.embedder != nil {
		_ = a.embedder.Close()
	}
	if a.gemini != nil {
		_ = a.gemini.Close()
	}
	_ = a.log.Sync()
}
