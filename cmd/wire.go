package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/clients"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/config"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/gcpvision"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/generator"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/local"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/metrics"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/orchestrator"
)

func endpoint(s config.Service) clients.Endpoint {
	return clients.Endpoint{URL: s.URL, Token: s.Token}
}

// buildPipeline constructs every capability once. The returned closer
// releases the ones holding connections.
func buildPipeline(ctx context.Context, cfg *config.Root, log *logrus.Logger, m *metrics.Metrics) (*orchestrator.Pipeline, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	h := clients.NewHTTP(cfg.ClientTimeout)
	closer := func() {}

	var sentiment analysis.SentimentClassifier
	switch cfg.Providers.Sentiment {
	case "vader":
		sentiment = local.NewVader()
	default:
		sentiment = h.SentimentClassifier(endpoint(cfg.Services.Sentiment))
	}

	var tagger analysis.LinguisticTagger
	switch cfg.Providers.Linguistic {
	case "prose":
		tagger = local.NewProse()
	default:
		tagger = h.LinguisticTagger(endpoint(cfg.Services.NLP))
	}

	var face analysis.FaceEstimator
	switch cfg.Providers.Face {
	case "gcp_vision":
		est, err := gcpvision.New(ctx, cfg.Vision.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		face = est
		closer = func() { _ = est.Close() }
	default:
		face = h.FaceEstimator(endpoint(cfg.Services.Face))
	}

	gen, err := generator.New(generator.Options{
		BaseURL:      cfg.Generator.BaseURL,
		APIKey:       cfg.Generator.APIKey,
		Model:        cfg.Generator.Model,
		SystemPrompt: cfg.Generator.SystemPrompt,
		MaxTokens:    cfg.Generator.MaxTokens,
	})
	if err != nil {
		closer()
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"sentiment":  cfg.Providers.Sentiment,
		"linguistic": cfg.Providers.Linguistic,
		"face":       cfg.Providers.Face,
		"model":      cfg.Generator.Model,
	}).Info("capabilities ready")

	p := orchestrator.NewPipeline(
		analysis.NewTextExtractor(sentiment, h.EmotionClassifier(endpoint(cfg.Services.Emotion)), tagger),
		analysis.NewFaceExtractor(face),
		gen,
		log,
		m,
	)
	return p, closer, nil
}
