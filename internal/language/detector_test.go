package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/prsentiment/internal/models"
)

type stubIdentifier struct {
	codes map[string]models.LanguageCode
	calls int
}

func (s *stubIdentifier) Identify(text string) (models.LanguageCode, bool) {
	s.calls++
	code, ok := s.codes[text]
	return code, ok
}

func newStubDetector() (*Detector, *stubIdentifier) {
	id := &stubIdentifier{codes: map[string]models.LanguageCode{
		"Das ist großartig!": "de",
		"¡Esto es terrible!": "es",
		"Hello there":        "en",
		"C'est magnifique":   "fr",
	}}
	return NewDetector(id, models.NewLanguageSet("de", "es"), "en"), id
}

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want models.Detection
	}{
		{"Das ist großartig!", models.Detection{Language: "de", Outcome: models.DetectSupported}},
		{"¡Esto es terrible!", models.Detection{Language: "es", Outcome: models.DetectSupported}},
		{"Hello there", models.Detection{Language: "en", Outcome: models.DetectTargetLanguage}},
		{"C'est magnifique", models.Detection{Language: "fr", Outcome: models.DetectUnsupported}},
		{"??", models.Detection{Outcome: models.DetectAmbiguous}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, _ := newStubDetector()
			got := d.Detect(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Outcome == models.DetectSupported, got.Supported())
		})
	}
}

func TestDetectEmptySkipsIdentifier(t *testing.T) {
	d, id := newStubDetector()
	for _, text := range []string{"", "   ", "\n\t"} {
		assert.Equal(t, models.Detection{Outcome: models.DetectEmpty}, d.Detect(text))
	}
	assert.Zero(t, id.calls)
}

func TestLinguaIdentifier(t *testing.T) {
	if testing.Short() {
		t.Skip("loads lingua language models")
	}
	for _, lowAccuracy := range []bool{true, false} {
		d := NewDetector(NewLinguaIdentifier(0, lowAccuracy), models.NewLanguageSet("de", "es"), "en")
		assertDetectsReviewLanguages(t, d)
	}
}

func assertDetectsReviewLanguages(t *testing.T, d *Detector) {
	t.Helper()
	assert.Equal(t, models.Detection{Language: "de", Outcome: models.DetectSupported},
		d.Detect("Vielen Dank für die schnelle Überprüfung, die Änderungen sehen wirklich gut aus."))
	assert.Equal(t, models.Detection{Language: "es", Outcome: models.DetectSupported},
		d.Detect("Muchas gracias por la revisión, creo que deberíamos cambiar el nombre de esta función."))
	assert.Equal(t, models.Detection{Language: "en", Outcome: models.DetectTargetLanguage},
		d.Detect("Thanks for the quick review, the changes look really good to me."))
}
