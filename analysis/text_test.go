package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

func fixedSentiment(label string, score float64) SentimentFunc {
	return func(context.Context, string) (Sentiment, error) {
		return Sentiment{Label: label, Score: score}, nil
	}
}

func fixedEmotions(raw emotion.Raw) EmotionFunc {
	return func(context.Context, string) (emotion.Raw, error) { return raw, nil }
}

func fixedTags(pos, ents []string) TaggerFunc {
	return func(context.Context, string) (Linguistics, error) {
		return Linguistics{POSTags: pos, NamedEntities: ents}, nil
	}
}

func TestTextExtract_BestDayEver(t *testing.T) {
	x := NewTextExtractor(
		fixedSentiment("POSITIVE", 0.97),
		fixedEmotions(emotion.Raw{"joy": 0.8, "surprise": 0.2}),
		fixedTags([]string{"PRON", "AUX", "DET", "ADJ", "NOUN", "ADV", "PUNCT"}, nil),
	)

	ta, err := x.Extract(context.Background(), "This is the best day ever!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ta.Text != "This is the best day ever!" {
		t.Errorf("expected verbatim text, got %q", ta.Text)
	}
	if ta.Sentiment.Label != "POSITIVE" || ta.Sentiment.Score != 0.97 {
		t.Errorf("unexpected sentiment %+v", ta.Sentiment)
	}
	if got := ta.DominantEmotion(); got != "joy" {
		t.Errorf("expected dominant emotion joy, got %q", got)
	}
	if !ta.Emotions.Valid() {
		t.Errorf("expected normalized emotions, got %v", ta.Emotions)
	}
	if len(ta.POSTags) != 7 {
		t.Errorf("expected 7 pos tags, got %d", len(ta.POSTags))
	}
	if ta.NamedEntities == nil {
		t.Error("expected empty, non-nil named entities")
	}
}

func TestTextExtract_KeepsTextVerbatim(t *testing.T) {
	x := NewTextExtractor(fixedSentiment("NEGATIVE", 0.6), fixedEmotions(emotion.Raw{"sadness": 1}), fixedTags(nil, nil))
	ta, err := x.Extract(context.Background(), "  meh \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ta.Text != "  meh \n" {
		t.Errorf("expected untrimmed text, got %q", ta.Text)
	}
}

func TestTextExtract_BlankText(t *testing.T) {
	called := false
	x := NewTextExtractor(
		SentimentFunc(func(context.Context, string) (Sentiment, error) { called = true; return Sentiment{}, nil }),
		fixedEmotions(emotion.Raw{"joy": 1}),
		fixedTags(nil, nil),
	)
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := x.Extract(context.Background(), text)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("text %q: expected ErrInvalidInput, got %v", text, err)
		}
	}
	if called {
		t.Error("expected no classifier calls for blank text")
	}
}

func TestTextExtract_Failures(t *testing.T) {
	boom := errors.New("model exploded")
	good := fixedSentiment("POSITIVE", 0.9)
	goodEmo := fixedEmotions(emotion.Raw{"joy": 1})
	goodTags := fixedTags(nil, nil)

	tests := []struct {
		name     string
		s        SentimentClassifier
		e        EmotionClassifier
		l        LinguisticTagger
		wantTask string
		wantErr  error
	}{
		{
			name:     "sentiment fails",
			s:        SentimentFunc(func(context.Context, string) (Sentiment, error) { return Sentiment{}, boom }),
			e:        goodEmo,
			l:        goodTags,
			wantTask: TaskSentiment,
			wantErr:  boom,
		},
		{
			name:     "sentiment out of range",
			s:        fixedSentiment("POSITIVE", 1.5),
			e:        goodEmo,
			l:        goodTags,
			wantTask: TaskSentiment,
		},
		{
			name:     "emotion fails",
			s:        good,
			e:        EmotionFunc(func(context.Context, string) (emotion.Raw, error) { return nil, boom }),
			l:        goodTags,
			wantTask: TaskEmotion,
			wantErr:  boom,
		},
		{
			name:     "emotion all zero",
			s:        good,
			e:        fixedEmotions(emotion.Raw{"joy": 0, "anger": 0}),
			l:        goodTags,
			wantTask: TaskEmotion,
			wantErr:  emotion.ErrEmptyDistribution,
		},
		{
			name:     "linguistic fails",
			s:        good,
			e:        goodEmo,
			l:        TaggerFunc(func(context.Context, string) (Linguistics, error) { return Linguistics{}, boom }),
			wantTask: TaskLinguistic,
			wantErr:  boom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextExtractor(tt.s, tt.e, tt.l).Extract(context.Background(), "hello")
			var ce *ClassificationError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ClassificationError, got %T: %v", err, err)
			}
			if ce.Task != tt.wantTask {
				t.Errorf("expected task %q, got %q", tt.wantTask, ce.Task)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected cause %v, got %v", tt.wantErr, err)
			}
		})
	}
}
