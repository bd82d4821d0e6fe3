package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

// --- Face emotion (/analyze, multipart) ---
type FaceResp struct {
	DominantEmotion string             `json:"dominant_emotion"`
	Emotion         map[string]float64 `json:"emotion"`
}

// Face uploads the frame with detection enforcement off. The service answers
// 422 {"error":"no_face"} when it cannot find a face; that maps to
// analysis.ErrNoFace. Any other 422 is a failure.
func (h *HTTP) Face(ctx context.Context, ep Endpoint, frame analysis.Frame) (emotion.Raw, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("file", "frame."+frame.Format)
	if err != nil {
		return nil, err
	}
	if _, err = fw.Write(frame.Bytes); err != nil {
		return nil, err
	}
	if err = w.WriteField("enforce_detection", "false"); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	url := strings.TrimRight(ep.URL, "/") + "/analyze"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if ep.Token != "" {
		req.Header.Set("Authorization", "Bearer "+ep.Token)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusUnprocessableEntity && isNoFace(body) {
			return nil, analysis.ErrNoFace
		}
		return nil, fmt.Errorf("face %s: %s", resp.Status, string(body))
	}

	var out FaceResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("face decode: %w", err)
	}
	return emotion.Raw(out.Emotion), nil
}

const noFaceCode = "no_face"

func isNoFace(body []byte) bool {
	var e struct {
		Error string `json:"error"`
	}
	return json.Unmarshal(body, &e) == nil && e.Error == noFaceCode
}
