package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/prsentiment/internal/models"
)

type fixedAnalyzer struct {
	polarity, subjectivity float64
}

func (f fixedAnalyzer) Analyze(string) (float64, float64) {
	return f.polarity, f.subjectivity
}

func TestClassifyBoundaries(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		polarity float64
		want     models.SentimentClass
	}{
		{0.10, models.SentimentNeutral},
		{0.11, models.SentimentPositive},
		{-0.10, models.SentimentNeutral},
		{-0.11, models.SentimentNegative},
		{0, models.SentimentNeutral},
		{1, models.SentimentPositive},
		{-1, models.SentimentNegative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.polarity), "polarity %v", tt.polarity)
	}
}

func TestScoreClassifiesOnRawPolarity(t *testing.T) {
	above := NewScorer(fixedAnalyzer{polarity: 0.104, subjectivity: 0.5}, DefaultThresholds()).Score("x")
	below := NewScorer(fixedAnalyzer{polarity: 0.096, subjectivity: 0.5}, DefaultThresholds()).Score("x")

	// both display as 0.10 but fall on opposite sides of the threshold
	assert.Equal(t, "0.10", above.Score.FormatPolarity())
	assert.Equal(t, "0.10", below.Score.FormatPolarity())
	assert.Equal(t, models.SentimentPositive, above.Class)
	assert.Equal(t, models.SentimentNeutral, below.Class)
	assert.Equal(t, 0.104, above.Score.Polarity)
}

func TestScoreIgnoresSubjectivity(t *testing.T) {
	low := NewScorer(fixedAnalyzer{polarity: 0.5, subjectivity: 0}, DefaultThresholds()).Score("x")
	high := NewScorer(fixedAnalyzer{polarity: 0.5, subjectivity: 1}, DefaultThresholds()).Score("x")
	assert.Equal(t, low.Class, high.Class)
}

func TestScoreCustomThresholds(t *testing.T) {
	s := NewScorer(fixedAnalyzer{polarity: 0.15}, Thresholds{Positive: 0.2, Negative: -0.2})
	assert.Equal(t, models.SentimentNeutral, s.Score("x").Class)
}

func TestVaderAnalyzer(t *testing.T) {
	s := NewScorer(NewVaderAnalyzer(), DefaultThresholds())

	positive := s.Score("That's great!")
	assert.Equal(t, models.SentimentPositive, positive.Class)
	assert.Greater(t, positive.Score.Subjectivity, 0.0)

	negative := s.Score("This is a terrible, awful change.")
	assert.Equal(t, models.SentimentNegative, negative.Class)

	neutral := s.Score("The file is in the folder.")
	assert.Equal(t, models.SentimentNeutral, neutral.Class)
	assert.Equal(t, 0.0, neutral.Score.Subjectivity)

	for _, r := range []models.Sentiment{positive, negative, neutral} {
		assert.GreaterOrEqual(t, r.Score.Polarity, -1.0)
		assert.LessOrEqual(t, r.Score.Polarity, 1.0)
		assert.GreaterOrEqual(t, r.Score.Subjectivity, 0.0)
		assert.LessOrEqual(t, r.Score.Subjectivity, 1.0)
	}
}
