package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/fusion"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/generator"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/orchestrator"
)

const requestIDHeader = "X-Request-ID"

// analyzeRequest is the wire form; image is base64, optionally as a data URL.
type analyzeRequest struct {
	Text  *string `json:"text"`
	Image *string `json:"image"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, id)

	if s.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}
	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req := orchestrator.Request{ID: id, Text: body.Text}
	if body.Image != nil && *body.Image != "" {
		img, err := decodeImage(*body.Image)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Image = img
	}

	ctx := r.Context()
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	resp, err := s.analyzer.Handle(ctx, req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeImage accepts raw base64 or a data URL such as
// "data:image/jpeg;base64,/9j/...".
func decodeImage(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, errors.New("malformed data URL")
		}
		s = s[i+1:]
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("image is not valid base64: %w", err)
	}
	return b, nil
}

func statusFor(err error) int {
	var (
		decodeErr *analysis.ImageDecodeError
		classErr  *analysis.ClassificationError
		faceErr   *analysis.FaceAnalysisError
		genErr    *generator.ServiceError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, analysis.ErrInvalidInput), errors.As(err, &decodeErr):
		return http.StatusBadRequest
	case errors.Is(err, fusion.ErrNoSignal):
		return http.StatusUnprocessableEntity
	case errors.As(err, &classErr), errors.As(err, &faceErr), errors.As(err, &genErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
