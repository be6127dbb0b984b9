package language

import (
	"log/slog"
	"strings"

	"github.com/spacesedan/prsentiment/internal/models"
)

// Identifier names the language of a text. ok is false when the text is too
// short or ambiguous to call.
type Identifier interface {
	Identify(text string) (code models.LanguageCode, ok bool)
}

// Detector applies the allow-list on top of an Identifier.
type Detector struct {
	identifier Identifier
	supported  models.LanguageSet
	target     models.LanguageCode
}

func NewDetector(identifier Identifier, supported models.LanguageSet, target models.LanguageCode) *Detector {
	return &Detector{
		identifier: identifier,
		supported:  supported,
		target:     target,
	}
}

// Detect never fails: empty, ambiguous, target-language and unlisted text all
// come back as a non-supported Detection.
func (d *Detector) Detect(text string) models.Detection {
	if strings.TrimSpace(text) == "" {
		return models.Detection{Outcome: models.DetectEmpty}
	}

	code, ok := d.identifier.Identify(text)
	if !ok || code == "" {
		slog.Debug("[LanguageDetector] Language could not be determined")
		return models.Detection{Outcome: models.DetectAmbiguous}
	}

	switch {
	case code == d.target:
		return models.Detection{Language: code, Outcome: models.DetectTargetLanguage}
	case d.supported.Contains(code):
		return models.Detection{Language: code, Outcome: models.DetectSupported}
	default:
		slog.Debug("[LanguageDetector] Language not in allow-list",
			slog.String("language", string(code)),
			slog.String("supported", d.supported.String()))
		return models.Detection{Language: code, Outcome: models.DetectUnsupported}
	}
}
