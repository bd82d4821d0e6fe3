package analysis

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

type FaceExtractor struct {
	estimator FaceEstimator
}

func NewFaceExtractor(e FaceEstimator) *FaceExtractor {
	return &FaceExtractor{estimator: e}
}

// Extract decodes img and estimates the facial emotion in it. A frame
// without a face yields (nil, nil).
func (x *FaceExtractor) Extract(ctx context.Context, img []byte) (*FaceAnalysis, error) {
	frame, err := DecodeFrame(img)
	if err != nil {
		return nil, err
	}

	raw, err := x.estimator.EstimateFaceEmotion(ctx, frame)
	if errors.Is(err, ErrNoFace) {
		return nil, nil
	}
	if err != nil {
		return nil, &FaceAnalysisError{Err: err}
	}

	dist, err := emotion.Normalize(raw)
	if err != nil {
		return nil, &FaceAnalysisError{Err: err}
	}
	// recomputed here; whatever the estimator thought was dominant is ignored
	dominant, _ := emotion.Dominant(dist)
	return &FaceAnalysis{DominantEmotion: dominant, EmotionScores: dist}, nil
}

// DecodeFrame decodes an encoded still image (jpeg, png, gif, webp, bmp).
func DecodeFrame(b []byte) (Frame, error) {
	if len(b) == 0 {
		return Frame{}, &ImageDecodeError{Err: errors.New("empty image")}
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return Frame{}, &ImageDecodeError{Err: err}
	}
	return Frame{Image: img, Bytes: b, Format: format}, nil
}
