package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

type TextExtractor struct {
	sentiment SentimentClassifier
	emotions  EmotionClassifier
	tagger    LinguisticTagger
}

func NewTextExtractor(s SentimentClassifier, e EmotionClassifier, l LinguisticTagger) *TextExtractor {
	return &TextExtractor{sentiment: s, emotions: e, tagger: l}
}

// Extract runs sentiment, emotion and linguistic classification over text.
// The first failing sub-task is reported as a *ClassificationError.
func (x *TextExtractor) Extract(ctx context.Context, text string) (*TextAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	sent, err := x.sentiment.ClassifySentiment(ctx, text)
	if err != nil {
		return nil, &ClassificationError{Task: TaskSentiment, Err: err}
	}
	if sent.Label == "" || math.IsNaN(sent.Score) || sent.Score < 0 || sent.Score > 1 {
		return nil, &ClassificationError{Task: TaskSentiment, Err: fmt.Errorf("malformed result %+v", sent)}
	}

	raw, err := x.emotions.ClassifyEmotions(ctx, text)
	if err != nil {
		return nil, &ClassificationError{Task: TaskEmotion, Err: err}
	}
	dist, err := emotion.Normalize(raw)
	if err != nil {
		return nil, &ClassificationError{Task: TaskEmotion, Err: err}
	}

	ling, err := x.tagger.TagLinguistics(ctx, text)
	if err != nil {
		return nil, &ClassificationError{Task: TaskLinguistic, Err: err}
	}

	return &TextAnalysis{
		Text:          text,
		Sentiment:     sent,
		Emotions:      dist,
		POSTags:       nonNil(ling.POSTags),
		NamedEntities: nonNil(ling.NamedEntities),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
