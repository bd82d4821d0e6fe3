package clients

import (
	"context"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

// The adapters below bind an endpoint to each client call so the result can
// be handed to the analysis extractors.

func (h *HTTP) SentimentClassifier(ep Endpoint) analysis.SentimentClassifier {
	return analysis.SentimentFunc(func(ctx context.Context, text string) (analysis.Sentiment, error) {
		return h.Sentiment(ctx, ep, text)
	})
}

func (h *HTTP) EmotionClassifier(ep Endpoint) analysis.EmotionClassifier {
	return analysis.EmotionFunc(func(ctx context.Context, text string) (emotion.Raw, error) {
		return h.Emotion(ctx, ep, text)
	})
}

func (h *HTTP) LinguisticTagger(ep Endpoint) analysis.LinguisticTagger {
	return analysis.TaggerFunc(func(ctx context.Context, text string) (analysis.Linguistics, error) {
		return h.NLP(ctx, ep, text)
	})
}

func (h *HTTP) FaceEstimator(ep Endpoint) analysis.FaceEstimator {
	return analysis.FaceFunc(func(ctx context.Context, frame analysis.Frame) (emotion.Raw, error) {
		return h.Face(ctx, ep, frame)
	})
}
