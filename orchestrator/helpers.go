package orchestrator

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (r Request) HasText() bool  { return r.Text != nil }
func (r Request) HasImage() bool { return len(r.Image) > 0 }

func (r Request) requestID() string {
	if r.ID != "" {
		return r.ID
	}
	return uuid.NewString()
}

func (p *Pipeline) fail(log logrus.FieldLogger, err error) error {
	stage := "unknown"
	var se *StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}
	p.metrics.Outcome(stage)
	log.WithError(err).WithField("stage", stage).Warn("analysis failed")
	return err
}
