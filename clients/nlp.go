package clients

import (
	"context"
	"strings"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

// --- NLP (/analyze) ---
type NLPReq struct {
	Text string `json:"text"`
}
type NLPResp struct {
	POSTags       []string `json:"pos_tags"`
	NamedEntities []string `json:"named_entities"`
}

func (h *HTTP) NLP(ctx context.Context, ep Endpoint, text string) (analysis.Linguistics, error) {
	var out NLPResp
	url := strings.TrimRight(ep.URL, "/") + "/analyze"
	if err := h.postJSON(ctx, ep, url, "nlp", NLPReq{Text: text}, &out); err != nil {
		return analysis.Linguistics{}, err
	}
	return analysis.Linguistics{POSTags: out.POSTags, NamedEntities: out.NamedEntities}, nil
}
