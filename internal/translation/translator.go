package translation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/prsentiment/internal/models"
)

// Backend is a translation service. Implementations return an error for any
// non-success response; the Adapter decides what to do with it.
type Backend interface {
	Translate(ctx context.Context, text string, source, target models.LanguageCode) (string, error)
	Name() string
}

var ErrEmptyTranslation = errors.New("backend returned an empty translation")

// Adapter wraps a Backend and never fails: on any backend error the original
// text is returned with FellBack set.
type Adapter struct {
	backend Backend
	target  models.LanguageCode
}

func NewAdapter(backend Backend, target models.LanguageCode) *Adapter {
	return &Adapter{backend: backend, target: target}
}

func (a *Adapter) Translate(ctx context.Context, text string, source models.LanguageCode) models.Translation {
	result := models.Translation{Text: text, Source: source, Target: a.target}
	if source == a.target {
		return result
	}

	start := time.Now()
	translated, err := a.backend.Translate(ctx, text, source, a.target)
	if err == nil && strings.TrimSpace(translated) == "" {
		err = ErrEmptyTranslation
	}
	if err != nil {
		slog.Warn("[Translator] Translation failed, using original text",
			slog.String("backend", a.backend.Name()),
			slog.String("source", string(source)),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		result.FellBack = true
		return result
	}

	result.Text = translated
	return result
}
