package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/jonathan/resume-extractor/internal/taxonomy"
)

// newSession builds a fully wired pipeline session from configuration. A
// missing taxonomy file is downgraded to a warning: prompts are then built
// without the taxonomy context block, matching how the matcher degrades.
func newSession(ctx context.Context, cfg *config.Config) (*pipeline.Session, func(), error) {
	st, err := store.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, llm.Options{
		Model:            cfg.Model,
		MaxTokens:        cfg.MaxTokens,
		Temperature:      cfg.Temperature,
		CompletionWindow: cfg.CompletionWindow,
	})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		logger.Warn("taxonomy unavailable, prompts will omit taxonomy context",
			zap.String("path", cfg.TaxonomyPath), zap.Error(err))
		tax = nil
	}

	return pipeline.NewSession(cfg, st, client, tax, logger), st.Close, nil
}
