package analysis

import (
	"context"
	"image"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Linguistics struct {
	POSTags       []string `json:"pos_tags"`
	NamedEntities []string `json:"named_entities"`
}

type TextAnalysis struct {
	Text          string               `json:"text"`
	Sentiment     Sentiment            `json:"sentiment"`
	Emotions      emotion.Distribution `json:"emotions"`
	POSTags       []string             `json:"pos_tags"`
	NamedEntities []string             `json:"named_entities"`
}

// DominantEmotion is the arg-max of Emotions.
func (t *TextAnalysis) DominantEmotion() string {
	label, _ := emotion.Dominant(t.Emotions)
	return label
}

type FaceAnalysis struct {
	DominantEmotion string               `json:"dominant_emotion"`
	EmotionScores   emotion.Distribution `json:"emotion_scores"`
}

// Frame is a decoded still image together with its encoded form.
type Frame struct {
	Image  image.Image
	Bytes  []byte
	Format string // "jpeg", "png", ...
}

type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (Sentiment, error)
}

// EmotionClassifier returns a score for every label it knows, not just the top one.
type EmotionClassifier interface {
	ClassifyEmotions(ctx context.Context, text string) (emotion.Raw, error)
}

type LinguisticTagger interface {
	TagLinguistics(ctx context.Context, text string) (Linguistics, error)
}

// FaceEstimator returns ErrNoFace when no usable face is found in the frame.
type FaceEstimator interface {
	EstimateFaceEmotion(ctx context.Context, frame Frame) (emotion.Raw, error)
}

// Func adapters let plain functions serve as capabilities.

type SentimentFunc func(ctx context.Context, text string) (Sentiment, error)

func (f SentimentFunc) ClassifySentiment(ctx context.Context, text string) (Sentiment, error) {
	return f(ctx, text)
}

type EmotionFunc func(ctx context.Context, text string) (emotion.Raw, error)

func (f EmotionFunc) ClassifyEmotions(ctx context.Context, text string) (emotion.Raw, error) {
	return f(ctx, text)
}

type TaggerFunc func(ctx context.Context, text string) (Linguistics, error)

func (f TaggerFunc) TagLinguistics(ctx context.Context, text string) (Linguistics, error) {
	return f(ctx, text)
}

type FaceFunc func(ctx context.Context, frame Frame) (emotion.Raw, error)

func (f FaceFunc) EstimateFaceEmotion(ctx context.Context, frame Frame) (emotion.Raw, error) {
	return f(ctx, frame)
}
