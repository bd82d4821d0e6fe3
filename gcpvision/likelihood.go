package gcpvision

import (
	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/emotion"
)

var likelihoodWeight = map[visionpb.Likelihood]float64{
	visionpb.Likelihood_UNKNOWN:       0,
	visionpb.Likelihood_VERY_UNLIKELY: 0,
	visionpb.Likelihood_UNLIKELY:      0.1,
	visionpb.Likelihood_POSSIBLE:      0.5,
	visionpb.Likelihood_LIKELY:        0.75,
	visionpb.Likelihood_VERY_LIKELY:   0.95,
}

// faceScores maps Vision's four likelihoods onto the label set the face
// service uses; whatever is left over is neutral.
func faceScores(fa *visionpb.FaceAnnotation) emotion.Raw {
	raw := emotion.Raw{
		"happy":    likelihoodWeight[fa.GetJoyLikelihood()],
		"sad":      likelihoodWeight[fa.GetSorrowLikelihood()],
		"angry":    likelihoodWeight[fa.GetAngerLikelihood()],
		"surprise": likelihoodWeight[fa.GetSurpriseLikelihood()],
	}
	top := 0.0
	for _, w := range raw {
		if w > top {
			top = w
		}
	}
	raw["neutral"] = 1 - top
	return raw
}
