package sentiment

import "github.com/spacesedan/prsentiment/internal/models"

const (
	DefaultPositiveThreshold = 0.10
	DefaultNegativeThreshold = -0.10
)

// Analyzer returns raw polarity in [-1, 1] and subjectivity in [0, 1].
type Analyzer interface {
	Analyze(text string) (polarity, subjectivity float64)
}

// Thresholds bound the neutral dead-zone: polarity strictly above Positive is
// positive, strictly below Negative is negative.
type Thresholds struct {
	Positive float64
	Negative float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Positive: DefaultPositiveThreshold, Negative: DefaultNegativeThreshold}
}

type Scorer struct {
	analyzer   Analyzer
	thresholds Thresholds
}

func NewScorer(analyzer Analyzer, thresholds Thresholds) *Scorer {
	return &Scorer{analyzer: analyzer, thresholds: thresholds}
}

func (s *Scorer) Score(text string) models.Sentiment {
	polarity, subjectivity := s.analyzer.Analyze(text)
	score := models.SentimentScore{Polarity: polarity, Subjectivity: subjectivity}
	return models.Sentiment{
		Class: s.thresholds.Classify(score.Polarity),
		Score: score,
	}
}

// Classify must be given the unrounded polarity; rounding first would move
// values like 0.104 across the boundary.
func (t Thresholds) Classify(polarity float64) models.SentimentClass {
	switch {
	case polarity > t.Positive:
		return models.SentimentPositive
	case polarity < t.Negative:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
