package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

// --- Text classification (Hugging Face inference format) ---
type ClassifyParams struct {
	TopK int `json:"top_k,omitempty"`
}
type ClassifyOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}
type ClassifyReq struct {
	Inputs     string          `json:"inputs"`
	Parameters *ClassifyParams `json:"parameters,omitempty"`
	Options    ClassifyOptions `json:"options"`
}
type EmoScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// allLabels asks for every label the emotion model knows.
const allLabels = 64

func (h *HTTP) Emotion(ctx context.Context, ep Endpoint, text string) (emotion.Raw, error) {
	scores, err := h.classify(ctx, ep, "emotion", ClassifyReq{
		Inputs:     text,
		Parameters: &ClassifyParams{TopK: allLabels},
		Options:    ClassifyOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}
	out := make(emotion.Raw, len(scores))
	for _, s := range scores {
		out[s.Label] += s.Score
	}
	return out, nil
}

func (h *HTTP) classify(ctx context.Context, ep Endpoint, name string, req ClassifyReq) ([]EmoScore, error) {
	var raw json.RawMessage
	if err := h.postJSON(ctx, ep, ep.URL, name, req, &raw); err != nil {
		return nil, err
	}
	return decodeScores(name, raw)
}

// decodeScores accepts both [[{label,score}]] (one list per input) and the
// flat [{label,score}] form.
func decodeScores(name string, raw json.RawMessage) ([]EmoScore, error) {
	var nested [][]EmoScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("%s decode: %w", name, errors.New("no results"))
		}
		return nested[0], nil
	}
	var flat []EmoScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	return flat, nil
}
