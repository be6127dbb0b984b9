package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/prsentiment/config"
	"github.com/spacesedan/prsentiment/internal/language"
	"github.com/spacesedan/prsentiment/internal/pipeline"
	"github.com/spacesedan/prsentiment/internal/report"
	"github.com/spacesedan/prsentiment/internal/sentiment"
	"github.com/spacesedan/prsentiment/internal/translation"
)

// components is everything a run needs besides GitHub.
type components struct {
	pipeline *pipeline.Pipeline
	builder  *report.Builder
	close    func()
}

// newComponents is replaced in tests.
var newComponents = buildComponents

func buildComponents(ctx context.Context, s config.Settings) (*components, error) {
	builder, err := report.NewBuilder(s.LanguageNames, s.SupportedLanguages, s.TruncateLength)
	if err != nil {
		return nil, err
	}

	backend, closeBackend, err := buildTranslationBackend(ctx, s)
	if err != nil {
		return nil, err
	}

	slog.Info("[Main] Loading language models", slog.String("supported", s.SupportedLanguages.String()))
	detector := language.NewDetector(
		language.NewLinguaIdentifier(s.DetectorMinRelativeDistance, s.DetectorAccuracy == config.DetectorAccuracyLow),
		s.SupportedLanguages,
		s.TargetLanguage,
	)
	translator := translation.NewAdapter(backend, s.TargetLanguage)
	scorer := sentiment.NewScorer(sentiment.NewVaderAnalyzer(), sentiment.Thresholds{
		Positive: s.PositiveThreshold,
		Negative: s.NegativeThreshold,
	})

	return &components{
		pipeline: pipeline.New(detector, translator, scorer),
		builder:  builder,
		close:    closeBackend,
	}, nil
}

func buildTranslationBackend(ctx context.Context, s config.Settings) (translation.Backend, func(), error) {
	backend, err := newTranslationBackend(ctx, s)
	if err != nil {
		return nil, nil, err
	}

	if s.ValkeyAddress == "" {
		return backend, func() {}, nil
	}

	store, err := translation.NewValkeyStore(ctx, s.ValkeyAddress, s.ValkeyPassword, s.ValkeyTLS)
	if err != nil {
		// the cache is an optimisation, run without it
		slog.Warn("[Main] Translation cache unavailable",
			slog.String("error", err.Error()))
		return backend, func() {}, nil
	}
	return translation.NewCachedBackend(backend, store, s.CacheTTL), store.Close, nil
}

func newTranslationBackend(ctx context.Context, s config.Settings) (translation.Backend, error) {
	switch s.Translator {
	case config.TranslatorOpenAI:
		return translation.NewOpenAIBackend(s.OpenAIAPIKey, s.OpenAIModel, s.TranslationTimeout), nil
	case config.TranslatorGoogle:
		g, err := translation.NewGoogleBackend(ctx, s.GoogleTranslateURL, s.GoogleAPIKey, s.TranslationTimeout)
		if err != nil {
			return nil, fmt.Errorf("initializing google translate: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown translator %q", s.Translator)
	}
}
