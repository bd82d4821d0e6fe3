package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics_Exposed(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Outcome("ok")
	m.Outcome("ok")
	m.Outcome("text")
	m.FaceAbsent()
	m.ObserveStage("generate", time.Now())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body := w.Body.String()

	for _, want := range []string{
		`emotichat_analyses_total{outcome="ok"} 2`,
		`emotichat_analyses_total{outcome="text"} 1`,
		`emotichat_face_absent_total 1`,
		`emotichat_stage_duration_seconds_count{stage="generate"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in metrics output", want)
		}
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.Outcome("ok")
	m.FaceAbsent()
	m.ObserveStage("text", time.Now())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != 404 {
		t.Errorf("expected 404 from nil metrics, got %d", w.Code)
	}
}
