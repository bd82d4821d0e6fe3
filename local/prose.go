package local

import (
	"context"
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/analysis"
)

// Prose tags parts of speech (Penn Treebank) and named entities.
type Prose struct {
	mu sync.Mutex
}

func NewProse() *Prose { return &Prose{} }

func (p *Prose) TagLinguistics(ctx context.Context, text string) (analysis.Linguistics, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Linguistics{}, err
	}
	p.mu.Lock()
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	p.mu.Unlock()
	if err != nil {
		return analysis.Linguistics{}, fmt.Errorf("prose: %w", err)
	}

	tokens := doc.Tokens()
	out := analysis.Linguistics{
		POSTags:       make([]string, 0, len(tokens)),
		NamedEntities: []string{},
	}
	for _, tok := range tokens {
		out.POSTags = append(out.POSTags, tok.Tag)
	}
	for _, ent := range doc.Entities() {
		out.NamedEntities = append(out.NamedEntities, ent.Text)
	}
	return out, nil
}
