package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

// --- Sentiment ---

// Sentiment returns the top-scoring polarity label.
func (h *HTTP) Sentiment(ctx context.Context, ep Endpoint, text string) (analysis.Sentiment, error) {
	scores, err := h.classify(ctx, ep, "sentiment", ClassifyReq{
		Inputs:  text,
		Options: ClassifyOptions{WaitForModel: true},
	})
	if err != nil {
		return analysis.Sentiment{}, err
	}
	if len(scores) == 0 {
		return analysis.Sentiment{}, fmt.Errorf("sentiment decode: %w", errors.New("no labels"))
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Score > top.Score || (s.Score == top.Score && s.Label < top.Label) {
			top = s
		}
	}
	return analysis.Sentiment{Label: top.Label, Score: top.Score}, nil
}
