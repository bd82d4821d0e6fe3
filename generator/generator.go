package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	promptHeader = "Based on the sentiment and emotion analysis results, provide an appropriate response as if you were engaging in a human-like conversation:\n\n"
	promptFooter = "Respond in a way that acknowledges the sentiment and emotions detected in the text and video, and engage in a conversational manner.\n"

	DefaultSystemPrompt = "You are a helpful assistant."
)

// ServiceError is any non-success outcome of the chat-completion call.
type ServiceError struct {
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation service %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("generation service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

type Options struct {
	BaseURL      string
	APIKey       string
	Model        string
	SystemPrompt string
	MaxTokens    int64
}

// OpenAI generates chatbot replies through the chat completions API.
type OpenAI struct {
	client    *openai.Client
	model     string
	system    string
	maxTokens int64
}

func New(o Options) (*OpenAI, error) {
	if o.APIKey == "" {
		return nil, errors.New("generator: api key is empty")
	}
	if o.Model == "" {
		return nil, errors.New("generator: model is empty")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(o.APIKey),
		option.WithMaxRetries(0),
	}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	client := openai.NewClient(opts...)
	system := o.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}
	return &OpenAI{client: &client, model: o.Model, system: system, maxTokens: o.MaxTokens}, nil
}

// ComposePrompt frames the fusion lines as the single user turn.
func ComposePrompt(lines []string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(promptFooter)
	return b.String()
}

func (g *OpenAI) GenerateResponse(ctx context.Context, lines []string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.system),
			openai.UserMessage(ComposePrompt(lines)),
		},
	}
	if g.maxTokens > 0 {
		params.MaxTokens = openai.Int(g.maxTokens)
	}

	comp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ServiceError{StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &ServiceError{Err: err}
	}
	if len(comp.Choices) == 0 {
		return "", &ServiceError{Err: errors.New("empty choices")}
	}
	return comp.Choices[0].Message.Content, nil
}
