// Package gcpvision estimates facial emotion with Google Cloud Vision face
// detection.
package gcpvision

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

const maxFaces = 10

type annotateFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)

type Estimator struct {
	client   *vision.ImageAnnotatorClient
	annotate annotateFunc
}

// New connects to Vision. An empty credentialsFile uses application default credentials.
func New(ctx context.Context, credentialsFile string) (*Estimator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	e := &Estimator{client: c}
	e.annotate = func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
		return c.BatchAnnotateImages(ctx, req)
	}
	return e, nil
}

func (e *Estimator) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}

// EstimateFaceEmotion scores the most confidently detected face. Vision
// reports no annotations at all when it finds no face.
func (e *Estimator) EstimateFaceEmotion(ctx context.Context, frame analysis.Frame) (emotion.Raw, error) {
	resp, err := e.annotate(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: frame.Bytes},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_FACE_DETECTION, MaxResults: maxFaces}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if len(resp.GetResponses()) == 0 {
		return nil, fmt.Errorf("vision: empty response")
	}
	r := resp.GetResponses()[0]
	if st := r.GetError(); st != nil && st.GetCode() != 0 {
		return nil, fmt.Errorf("vision: %s (code %d)", st.GetMessage(), st.GetCode())
	}

	var best *visionpb.FaceAnnotation
	for _, fa := range r.GetFaceAnnotations() {
		if best == nil || fa.GetDetectionConfidence() > best.GetDetectionConfidence() {
			best = fa
		}
	}
	if best == nil {
		return nil, analysis.ErrNoFace
	}
	return faceScores(best), nil
}
