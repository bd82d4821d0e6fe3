package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	reg prometheus.Gatherer

	analyses      *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	faceAbsent    prometheus.Counter
}

func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		analyses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emotichat_analyses_total",
				Help: "Analyze requests by outcome (ok or the failing stage)",
			},
			[]string{"outcome"},
		),
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "emotichat_stage_duration_seconds",
				Help:    "Duration of each pipeline stage",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"stage"},
		),
		faceAbsent: f.NewCounter(prometheus.CounterOpts{
			Name: "emotichat_face_absent_total",
			Help: "Frames in which no face was detected",
		}),
	}
}

func (m *Metrics) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStage(stage string, since time.Time) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(time.Since(since).Seconds())
}

func (m *Metrics) FaceAbsent() {
	if m == nil {
		return
	}
	m.faceAbsent.Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
