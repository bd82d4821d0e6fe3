// Package fusion combines per-modality analyses into the lines handed to the
// response generator.
package fusion

import (
	"errors"
	"fmt"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

var ErrNoSignal = errors.New("fusion: no text or face analysis to summarize")

type Summary struct {
	Lines []string
}

// Build describes the text analysis (verbatim text, sentiment, dominant
// emotion) followed by the dominant face emotion. Either input may be nil,
// but not both.
func Build(text *analysis.TextAnalysis, face *analysis.FaceAnalysis) (Summary, error) {
	if text == nil && face == nil {
		return Summary{}, ErrNoSignal
	}
	var lines []string
	if text != nil {
		lines = append(lines,
			fmt.Sprintf("Text: %s", text.Text),
			fmt.Sprintf("Text sentiment: %s (score: %.2f)", text.Sentiment.Label, text.Sentiment.Score),
			fmt.Sprintf("Dominant text emotion: %s", text.DominantEmotion()),
		)
	}
	if face != nil {
		lines = append(lines, fmt.Sprintf("Dominant video emotion: %s", face.DominantEmotion))
	}
	return Summary{Lines: lines}, nil
}
