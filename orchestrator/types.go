package orchestrator

import (
	"errors"
	"fmt"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

// Request carries the optional modalities. Image is the encoded still image,
// already transport-decoded.
type Request struct {
	ID    string // request id for logs; generated when empty
	Text  *string
	Image []byte
}

type AnalysisResponse struct {
	ChatbotResponse string                 `json:"chatbot_response"`
	TextEmotions    emotion.Distribution   `json:"text_emotions"`
	VideoEmotions   *analysis.FaceAnalysis `json:"video_emotions"`
}

const (
	StageValidate = "validate"
	StageText     = "text"
	StageFace     = "face"
	StageFusion   = "fusion"
	StageGenerate = "generate"
)

// ErrNoExtractor is returned when a request carries a modality the pipeline
// was built without an extractor for.
var ErrNoExtractor = errors.New("no extractor configured for modality")

// StageError names the pipeline stage that failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }
