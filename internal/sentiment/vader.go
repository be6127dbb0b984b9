package sentiment

import (
	"math"

	"github.com/jonreiter/govader"
)

// VaderAnalyzer scores English text with VADER. The compound score is used
// as polarity, and the share of the text carrying positive or negative
// valence as subjectivity.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderAnalyzer) Analyze(text string) (polarity, subjectivity float64) {
	scores := v.analyzer.PolarityScores(text)
	return clamp(scores.Compound, -1, 1), clamp(scores.Positive+scores.Negative, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
