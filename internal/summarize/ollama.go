package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/peder1981/Secre-Tina/internal/resilience"
)

const generatePath = "/api/generate"

// Ollama is the locally-addressable generate-API backend.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
	retry   resilience.RetryConfig
}

// NewOllama creates the Ollama backend against the given base URL.
func NewOllama(baseURL, model string) *Ollama {
	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
		retry:   resilience.DefaultRetryConfig(),
	}
}

// Name identifies the backend.
func (b *Ollama) Name() string { return "ollama" }

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

// Summarize issues a single synchronous generate request with the
// prompt and transcript concatenated. Transport failures are retried;
// a delivered non-2xx status is not.
func (b *Ollama) Summarize(ctx context.Context, prompt, text string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  b.model,
		Prompt: prompt + "\n\n" + text,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encode ollama request: %w", err)
	}

	var out string
	err = resilience.Retry(ctx, b.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+generatePath, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build ollama request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := b.client.Do(req)
		if err != nil {
			return fmt.Errorf("ollama request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			_, _ = io.Copy(io.Discard, resp.Body)
			return &RequestError{Backend: b.Name(), Status: resp.StatusCode}
		}

		var gr generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if gr.Response == nil {
			return fmt.Errorf("%w: missing response field", ErrMalformedResponse)
		}
		out = *gr.Response
		return nil
	})
	if err != nil {
		return "", err
	}
	return out, nil
}
