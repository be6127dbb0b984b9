package pipeline

import (
	"context"
	"log/slog"

	"github.com/spacesedan/prsentiment/internal/markdown"
	"github.com/spacesedan/prsentiment/internal/models"
)

type LanguageDetector interface {
	Detect(text string) models.Detection
}

type Translator interface {
	Translate(ctx context.Context, text string, source models.LanguageCode) models.Translation
}

type SentimentScorer interface {
	Score(text string) models.Sentiment
}

type SkipReason string

const (
	SkipTargetLanguage      SkipReason = "target_language"
	SkipUnsupportedLanguage SkipReason = "unsupported_language"
	SkipAmbiguous           SkipReason = "ambiguous"
	SkipEmpty               SkipReason = "empty"
)

func skipReasonFor(outcome models.DetectOutcome) SkipReason {
	switch outcome {
	case models.DetectTargetLanguage:
		return SkipTargetLanguage
	case models.DetectAmbiguous:
		return SkipAmbiguous
	case models.DetectEmpty:
		return SkipEmpty
	default:
		return SkipUnsupportedLanguage
	}
}

// Result is either a Record or a Skip reason, never both.
type Result struct {
	Record models.AnalysisRecord
	Skip   SkipReason
}

func (r Result) Skipped() bool {
	return r.Skip != ""
}

type Pipeline struct {
	detector   LanguageDetector
	translator Translator
	scorer     SentimentScorer
}

func New(detector LanguageDetector, translator Translator, scorer SentimentScorer) *Pipeline {
	return &Pipeline{
		detector:   detector,
		translator: translator,
		scorer:     scorer,
	}
}

// Process runs one comment body through detect -> translate -> score.
// Comments outside the allow-list are skipped; translation failures are not.
func (p *Pipeline) Process(ctx context.Context, text string) Result {
	plain := markdown.PlainText(text)

	detection := p.detector.Detect(plain)
	if !detection.Supported() {
		reason := skipReasonFor(detection.Outcome)
		slog.Debug("[Pipeline] Comment skipped",
			slog.String("reason", string(reason)),
			slog.String("language", string(detection.Language)))
		return Result{Skip: reason}
	}
	slog.Info("[Pipeline] Detected language", slog.String("language", string(detection.Language)))

	translation := p.translator.Translate(ctx, plain, detection.Language)
	slog.Info("[Pipeline] Translated text",
		slog.String("text", translation.Text),
		slog.Bool("fell_back", translation.FellBack))

	sentiment := p.scorer.Score(translation.Text)

	return Result{Record: models.AnalysisRecord{
		OriginalText:        text,
		DetectedLanguage:    detection.Language,
		TranslatedText:      translation.Text,
		TranslationFellBack: translation.FellBack,
		Sentiment:           sentiment,
	}}
}

// Summary is the outcome of a Run. Records keep input order.
type Summary struct {
	Records   []models.AnalysisRecord
	Total     int
	Processed int
	Skipped   map[SkipReason]int
	FellBack  int
}

func (s Summary) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Run processes comments one at a time in order.
func (p *Pipeline) Run(ctx context.Context, comments []models.Comment) Summary {
	summary := Summary{
		Total:   len(comments),
		Skipped: make(map[SkipReason]int),
	}

	for _, comment := range comments {
		result := p.Process(ctx, comment.Body)
		if result.Skipped() {
			summary.Skipped[result.Skip]++
			continue
		}

		record := result.Record
		record.CommentID = comment.ID
		summary.Records = append(summary.Records, record)
		summary.Processed++
		if record.TranslationFellBack {
			summary.FellBack++
		}

		slog.Info("[Pipeline] Analyzed comment",
			slog.Int64("comment_id", comment.ID),
			slog.String("sentiment", string(record.Sentiment.Class)),
			slog.Float64("polarity", record.Sentiment.Score.RoundedPolarity()))
	}

	slog.Info("[Pipeline] Run complete",
		slog.Int("total", summary.Total),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.SkippedTotal()),
		slog.Int("target_language", summary.Skipped[SkipTargetLanguage]),
		slog.Int("translation_fallbacks", summary.FellBack))

	return summary
}
