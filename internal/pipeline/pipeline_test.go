package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/prsentiment/internal/models"
)

type stubDetector map[string]models.Detection

func (s stubDetector) Detect(text string) models.Detection {
	if text == "" {
		return models.Detection{Outcome: models.DetectEmpty}
	}
	if d, ok := s[text]; ok {
		return d
	}
	return models.Detection{Outcome: models.DetectAmbiguous}
}

type stubTranslator struct {
	out      map[string]string
	fail     bool
	calls    int
	lastFrom models.LanguageCode
}

func (s *stubTranslator) Translate(_ context.Context, text string, source models.LanguageCode) models.Translation {
	s.calls++
	s.lastFrom = source
	if s.fail {
		return models.Translation{Text: text, Source: source, Target: "en", FellBack: true}
	}
	return models.Translation{Text: s.out[text], Source: source, Target: "en"}
}

type stubScorer map[string]float64

func (s stubScorer) Score(text string) models.Sentiment {
	p := s[text]
	class := models.SentimentNeutral
	if p > 0.1 {
		class = models.SentimentPositive
	} else if p < -0.1 {
		class = models.SentimentNegative
	}
	return models.Sentiment{Class: class, Score: models.SentimentScore{Polarity: p, Subjectivity: 0.5}}
}

func newTestPipeline(translator *stubTranslator) *Pipeline {
	detector := stubDetector{
		"Das ist großartig!": {Language: "de", Outcome: models.DetectSupported},
		"¡Esto es terrible!": {Language: "es", Outcome: models.DetectSupported},
		"Hello there":        {Language: "en", Outcome: models.DetectTargetLanguage},
		"C'est magnifique":   {Language: "fr", Outcome: models.DetectUnsupported},
	}
	scorer := stubScorer{
		"That's great!":      0.8,
		"This is terrible!":  -1.0,
		"Das ist großartig!": 0.0,
		"¡Esto es terrible!": 0.0,
	}
	return New(detector, translator, scorer)
}

func TestProcessSupported(t *testing.T) {
	tr := &stubTranslator{out: map[string]string{"Das ist großartig!": "That's great!"}}
	p := newTestPipeline(tr)

	res := p.Process(context.Background(), "Das ist großartig!")

	require.False(t, res.Skipped())
	assert.Equal(t, models.AnalysisRecord{
		OriginalText:     "Das ist großartig!",
		DetectedLanguage: "de",
		TranslatedText:   "That's great!",
		Sentiment: models.Sentiment{
			Class: models.SentimentPositive,
			Score: models.SentimentScore{Polarity: 0.8, Subjectivity: 0.5},
		},
	}, res.Record)
	assert.Equal(t, models.LanguageCode("de"), tr.lastFrom)
}

func TestProcessSkips(t *testing.T) {
	tests := []struct {
		text string
		want SkipReason
	}{
		{"Hello there", SkipTargetLanguage},
		{"C'est magnifique", SkipUnsupportedLanguage},
		{"???", SkipAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tr := &stubTranslator{}
			res := newTestPipeline(tr).Process(context.Background(), tt.text)
			assert.True(t, res.Skipped())
			assert.Equal(t, tt.want, res.Skip)
			assert.Zero(t, tr.calls, "skipped comments must not be translated")
		})
	}
}

func TestProcessTranslationFailureStillProducesRecord(t *testing.T) {
	tr := &stubTranslator{fail: true}
	res := newTestPipeline(tr).Process(context.Background(), "¡Esto es terrible!")

	require.False(t, res.Skipped())
	assert.True(t, res.Record.TranslationFellBack)
	assert.Equal(t, "¡Esto es terrible!", res.Record.TranslatedText)
	assert.Equal(t, models.LanguageCode("es"), res.Record.DetectedLanguage)
}

func TestProcessStripsMarkdownBeforeDetection(t *testing.T) {
	tr := &stubTranslator{out: map[string]string{"Das ist großartig!": "That's great!"}}
	body := "Das ist **großartig**!\n\n```go\nx := 1\n```"

	res := newTestPipeline(tr).Process(context.Background(), body)

	require.False(t, res.Skipped())
	assert.Equal(t, body, res.Record.OriginalText)
	assert.Equal(t, "That's great!", res.Record.TranslatedText)
}

func TestRunKeepsOrderAndCounts(t *testing.T) {
	tr := &stubTranslator{out: map[string]string{
		"Das ist großartig!": "That's great!",
		"¡Esto es terrible!": "This is terrible!",
	}}
	comments := []models.Comment{
		{ID: 1, Body: "¡Esto es terrible!"},
		{ID: 2, Body: "Hello there"},
		{ID: 3, Body: "Das ist großartig!"},
		{ID: 4, Body: "C'est magnifique"},
		{ID: 5, Body: "   "},
	}

	summary := newTestPipeline(tr).Run(context.Background(), comments)

	require.Len(t, summary.Records, 2)
	assert.Equal(t, int64(1), summary.Records[0].CommentID)
	assert.Equal(t, models.SentimentNegative, summary.Records[0].Sentiment.Class)
	assert.Equal(t, int64(3), summary.Records[1].CommentID)
	assert.Equal(t, models.SentimentPositive, summary.Records[1].Sentiment.Class)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 3, summary.SkippedTotal())
	assert.Equal(t, 1, summary.Skipped[SkipTargetLanguage])
	assert.Equal(t, 1, summary.Skipped[SkipUnsupportedLanguage])
	assert.Equal(t, 1, summary.Skipped[SkipEmpty])
	assert.Zero(t, summary.FellBack)
}

func TestRunCountsFallbacks(t *testing.T) {
	tr := &stubTranslator{fail: true}
	summary := newTestPipeline(tr).Run(context.Background(), []models.Comment{
		{ID: 1, Body: "Das ist großartig!"},
		{ID: 2, Body: "¡Esto es terrible!"},
	})

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.FellBack)
}

func TestRunEmpty(t *testing.T) {
	summary := newTestPipeline(&stubTranslator{}).Run(context.Background(), nil)
	assert.Empty(t, summary.Records)
	assert.Zero(t, summary.SkippedTotal())
}
