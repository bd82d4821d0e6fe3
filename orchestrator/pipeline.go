package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/fusion"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/generator"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/metrics"
)

type Generator interface {
	GenerateResponse(ctx context.Context, lines []string) (string, error)
}

type Pipeline struct {
	text    *analysis.TextExtractor
	face    *analysis.FaceExtractor
	gen     Generator
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

func NewPipeline(text *analysis.TextExtractor, face *analysis.FaceExtractor, gen Generator, log logrus.FieldLogger, m *metrics.Metrics) *Pipeline {
	return &Pipeline{text: text, face: face, gen: gen, log: log, metrics: m}
}

// Handle analyzes whichever modalities req carries and generates a reply.
// It returns either a complete response or an error, never both; a frame
// without a face is not an error.
func (p *Pipeline) Handle(ctx context.Context, req Request) (*AnalysisResponse, error) {
	log := p.log.WithField("request_id", req.requestID())

	if !req.HasText() && !req.HasImage() {
		return nil, p.fail(log, &StageError{Stage: StageValidate, Err: analysis.ErrInvalidInput})
	}
	if req.HasText() && p.text == nil {
		return nil, p.fail(log, &StageError{Stage: StageValidate, Err: fmt.Errorf("text: %w", ErrNoExtractor)})
	}
	if req.HasImage() && p.face == nil {
		return nil, p.fail(log, &StageError{Stage: StageValidate, Err: fmt.Errorf("image: %w", ErrNoExtractor)})
	}

	var (
		ta *analysis.TextAnalysis
		fa *analysis.FaceAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	if req.HasText() {
		g.Go(func() error {
			defer p.metrics.ObserveStage(StageText, time.Now())
			var err error
			if ta, err = p.text.Extract(gctx, *req.Text); err != nil {
				return &StageError{Stage: StageText, Err: err}
			}
			return nil
		})
	}
	if req.HasImage() {
		g.Go(func() error {
			defer p.metrics.ObserveStage(StageFace, time.Now())
			var err error
			if fa, err = p.face.Extract(gctx, req.Image); err != nil {
				return &StageError{Stage: StageFace, Err: err}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, p.fail(log, err)
	}
	if req.HasImage() && fa == nil {
		p.metrics.FaceAbsent()
		log.Info("no face detected, continuing without video emotions")
	}

	summary, err := fusion.Build(ta, fa)
	if err != nil {
		return nil, p.fail(log, &StageError{Stage: StageFusion, Err: err})
	}
	log.WithField("prompt", generator.ComposePrompt(summary.Lines)).Debug("prompt composed")

	start := time.Now()
	reply, err := p.gen.GenerateResponse(ctx, summary.Lines)
	p.metrics.ObserveStage(StageGenerate, start)
	if err != nil {
		return nil, p.fail(log, &StageError{Stage: StageGenerate, Err: err})
	}

	out := &AnalysisResponse{ChatbotResponse: reply, VideoEmotions: fa}
	if ta != nil {
		out.TextEmotions = ta.Emotions
	}
	p.metrics.Outcome("ok")
	log.WithFields(logrus.Fields{
		"text":  ta != nil,
		"face":  fa != nil,
		"reply": len(reply),
	}).Info("analysis complete")
	return out, nil
}
