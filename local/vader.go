// Package local provides in-process text capabilities that need no model
// service. The underlying libraries are not documented as safe for
// concurrent use, so every call is serialized.
package local

import (
	"context"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

// VADER compound thresholds.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type Vader struct {
	mu  sync.Mutex
	sia *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{sia: govader.NewSentimentIntensityAnalyzer()}
}

// ClassifySentiment labels text POSITIVE, NEGATIVE or NEUTRAL. The score is
// the compound polarity rescaled into [0,1] toward the chosen label, or the
// neutral proportion for NEUTRAL.
func (v *Vader) ClassifySentiment(ctx context.Context, text string) (analysis.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Sentiment{}, err
	}
	v.mu.Lock()
	s := v.sia.PolarityScores(text)
	v.mu.Unlock()

	switch {
	case s.Compound >= positiveThreshold:
		return analysis.Sentiment{Label: "POSITIVE", Score: (1 + s.Compound) / 2}, nil
	case s.Compound <= negativeThreshold:
		return analysis.Sentiment{Label: "NEGATIVE", Score: (1 - s.Compound) / 2}, nil
	default:
		return analysis.Sentiment{Label: "NEUTRAL", Score: s.Neutral}, nil
	}
}
