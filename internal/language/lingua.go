package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/spacesedan/prsentiment/internal/models"
)

// LinguaIdentifier is backed by lingua-go. Building it loads language models,
// so construct one per process and reuse it.
type LinguaIdentifier struct {
	detector lingua.LanguageDetector
}

// NewLinguaIdentifier considers every language lingua knows about, so that a
// French comment is reported as French rather than forced into the allow-list.
// lowAccuracy skips the large n-gram models, which otherwise dominate memory
// and start-up time.
func NewLinguaIdentifier(minRelativeDistance float64, lowAccuracy bool) *LinguaIdentifier {
	builder := lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	if lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	if minRelativeDistance > 0 {
		builder = builder.WithMinimumRelativeDistance(minRelativeDistance)
	}
	return &LinguaIdentifier{detector: builder.Build()}
}

func (l *LinguaIdentifier) Identify(text string) (models.LanguageCode, bool) {
	lang, reliable := l.detector.DetectLanguageOf(text)
	if !reliable || lang == lingua.Unknown {
		return "", false
	}
	return models.LanguageCode(strings.ToLower(lang.IsoCode639_1().String())), true
}
