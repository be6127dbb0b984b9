package models

import (
	"fmt"
	"math"
)

type SentimentClass string

const (
	SentimentPositive SentimentClass = "positive"
	SentimentNeutral  SentimentClass = "neutral"
	SentimentNegative SentimentClass = "negative"
)

// SentimentScore holds the raw, unrounded analyzer output.
// Polarity is in [-1, 1], Subjectivity in [0, 1].
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

func (s SentimentScore) RoundedPolarity() float64 {
	return round2(s.Polarity)
}

func (s SentimentScore) RoundedSubjectivity() float64 {
	return round2(s.Subjectivity)
}

func (s SentimentScore) FormatPolarity() string {
	return fmt.Sprintf("%.2f", s.RoundedPolarity())
}

type Sentiment struct {
	Class SentimentClass `json:"class"`
	Score SentimentScore `json:"score"`
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	// avoid rendering -0.00
	if r == 0 {
		return 0
	}
	return r
}
