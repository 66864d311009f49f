package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAITemperature = 0.7
	requestTimeout    = 120 * time.Second
)

// OpenAI is the hosted chat-completion backend.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates the OpenAI backend with the given credential and
// model id.
func NewOpenAI(apiKey, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	return newOpenAI(cfg, model)
}

func newOpenAI(cfg openai.ClientConfig, model string) *OpenAI {
	if cfg.HTTPClient == nil || cfg.HTTPClient == http.DefaultClient {
		cfg.HTTPClient = &http.Client{Timeout: requestTimeout}
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

// Name identifies the backend.
func (b *OpenAI) Name() string { return "openai" }

// Summarize sends the prompt as the system message and the transcript
// as the user message, returning the first completion's text.
func (b *OpenAI) Summarize(ctx context.Context, prompt, text string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: openAITemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
			return "", &RequestError{Backend: b.Name(), Status: apiErr.HTTPStatusCode}
		}
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
