package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input: nothing to analyze")
	// ErrNoFace is the expected outcome when a frame holds no usable face.
	ErrNoFace = errors.New("no face detected")
)

const (
	TaskSentiment  = "sentiment"
	TaskEmotion    = "emotion"
	TaskLinguistic = "linguistic"
)

// ClassificationError reports which text sub-task failed.
type ClassificationError struct {
	Task string
	Err  error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("text %s classification: %v", e.Task, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

type ImageDecodeError struct {
	Err error
}

func (e *ImageDecodeError) Error() string { return fmt.Sprintf("image decode: %v", e.Err) }

func (e *ImageDecodeError) Unwrap() error { return e.Err }

type FaceAnalysisError struct {
	Err error
}

func (e *FaceAnalysisError) Error() string { return fmt.Sprintf("face analysis: %v", e.Err) }

func (e *FaceAnalysisError) Unwrap() error { return e.Err }
