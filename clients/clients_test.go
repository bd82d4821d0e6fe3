package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

func TestEmotion_Nested(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer hf-token" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		var req ClassifyReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Inputs != "I am thrilled" {
			t.Errorf("expected inputs, got %q", req.Inputs)
		}
		if req.Parameters == nil || req.Parameters.TopK != allLabels {
			t.Errorf("expected top_k %d, got %+v", allLabels, req.Parameters)
		}
		w.Write([]byte(`[[{"label":"joy","score":0.91},{"label":"surprise","score":0.06},{"label":"neutral","score":0.03}]]`))
	}))
	defer server.Close()

	raw, err := NewHTTP(time.Second).Emotion(context.Background(), Endpoint{URL: server.URL, Token: "hf-token"}, "I am thrilled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 3 || raw["joy"] != 0.91 {
		t.Errorf("unexpected scores %v", raw)
	}
}

func TestEmotion_Flat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"anger","score":0.7},{"label":"fear","score":0.3}]`))
	}))
	defer server.Close()

	raw, err := NewHTTP(time.Second).Emotion(context.Background(), Endpoint{URL: server.URL}, "grr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["anger"] != 0.7 || raw["fear"] != 0.3 {
		t.Errorf("unexpected scores %v", raw)
	}
}

func TestEmotion_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model loading"}`))
	}))
	defer server.Close()

	_, err := NewHTTP(time.Second).Emotion(context.Background(), Endpoint{URL: server.URL}, "hi")
	if err == nil {
		t.Fatal("expected error for 503")
	}
}

func TestEmotion_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer server.Close()

	_, err := NewHTTP(time.Second).Emotion(context.Background(), Endpoint{URL: server.URL}, "hi")
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSentiment_PicksTop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"NEGATIVE","score":0.03},{"label":"POSITIVE","score":0.97}]]`))
	}))
	defer server.Close()

	s, err := NewHTTP(time.Second).Sentiment(context.Background(), Endpoint{URL: server.URL}, "best day ever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Label != "POSITIVE" || s.Score != 0.97 {
		t.Errorf("unexpected sentiment %+v", s)
	}
}

func TestSentiment_NoLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[]]`))
	}))
	defer server.Close()

	_, err := NewHTTP(time.Second).Sentiment(context.Background(), Endpoint{URL: server.URL}, "x")
	if err == nil {
		t.Fatal("expected error for empty label list")
	}
}

func TestNLP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("expected /analyze, got %s", r.URL.Path)
		}
		var req NLPReq
		json.NewDecoder(r.Body).Decode(&req)
		if req.Text != "Paris is lovely" {
			t.Errorf("unexpected text %q", req.Text)
		}
		json.NewEncoder(w).Encode(NLPResp{
			POSTags:       []string{"PROPN", "AUX", "ADJ"},
			NamedEntities: []string{"Paris"},
		})
	}))
	defer server.Close()

	ling, err := NewHTTP(time.Second).NLP(context.Background(), Endpoint{URL: server.URL + "/"}, "Paris is lovely")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ling.POSTags) != 3 || len(ling.NamedEntities) != 1 || ling.NamedEntities[0] != "Paris" {
		t.Errorf("unexpected linguistics %+v", ling)
	}
}

func TestFace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if r.FormValue("enforce_detection") != "false" {
			t.Errorf("expected enforce_detection=false, got %q", r.FormValue("enforce_detection"))
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		if string(b) != "jpegbytes" || hdr.Filename != "frame.jpeg" {
			t.Errorf("unexpected upload %q %q", hdr.Filename, b)
		}
		w.Write([]byte(`{"dominant_emotion":"sad","emotion":{"happy":90.0,"sad":10.0}}`))
	}))
	defer server.Close()

	raw, err := NewHTTP(time.Second).Face(context.Background(), Endpoint{URL: server.URL},
		analysis.Frame{Bytes: []byte("jpegbytes"), Format: "jpeg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["happy"] != 90 || raw["sad"] != 10 {
		t.Errorf("unexpected scores %v", raw)
	}
}

func TestFace_NoFace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"no_face"}`))
	}))
	defer server.Close()

	_, err := NewHTTP(time.Second).Face(context.Background(), Endpoint{URL: server.URL},
		analysis.Frame{Bytes: []byte("x"), Format: "png"})
	if !errors.Is(err, analysis.ErrNoFace) {
		t.Errorf("expected ErrNoFace, got %v", err)
	}
}

func TestFace_Unprocessable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"field 'file' required"}`))
	}))
	defer server.Close()

	h := NewHTTP(time.Second)
	_, err := h.Face(context.Background(), Endpoint{URL: server.URL},
		analysis.Frame{Bytes: []byte("x"), Format: "png"})
	if err == nil || errors.Is(err, analysis.ErrNoFace) {
		t.Fatalf("expected a non-no-face error, got %v", err)
	}

	x := analysis.NewFaceExtractor(h.FaceEstimator(Endpoint{URL: server.URL}))
	fa, err := x.Extract(context.Background(), testPNG(t))
	if fa != nil {
		t.Errorf("expected no analysis, got %+v", fa)
	}
	var faceErr *analysis.FaceAnalysisError
	if !errors.As(err, &faceErr) {
		t.Errorf("expected *analysis.FaceAnalysisError, got %T: %v", err, err)
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFace_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTP(time.Second).Face(context.Background(), Endpoint{URL: server.URL},
		analysis.Frame{Bytes: []byte("x"), Format: "png"})
	if err == nil || errors.Is(err, analysis.ErrNoFace) {
		t.Errorf("expected a non-no-face error, got %v", err)
	}
}

func TestCapabilities_BindEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"POSITIVE","score":0.8}]]`))
	}))
	defer server.Close()

	c := NewHTTP(time.Second).SentimentClassifier(Endpoint{URL: server.URL})
	s, err := c.ClassifySentiment(context.Background(), "ok")
	if err != nil || s.Label != "POSITIVE" {
		t.Errorf("unexpected result %+v, %v", s, err)
	}
}
