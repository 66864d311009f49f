// Package summarize routes transcripts to language-model backends.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peder1981/Secre-Tina/internal/config"
)

// ErrNoBackend is returned when no summarization backend is configured.
var ErrNoBackend = errors.New("no summarization backend available")

// ErrMalformedResponse is returned when a backend delivers a response
// the router cannot extract text from.
var ErrMalformedResponse = errors.New("malformed backend response")

// RequestError reports a request the backend answered with a failure
// status.
type RequestError struct {
	Backend string
	Status  int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request failed with status %d", e.Backend, e.Status)
}

// Backend produces a summary from a prompt and transcript text.
type Backend interface {
	Name() string
	Summarize(ctx context.Context, prompt, text string) (string, error)
}

// Router dispatches summarization to the highest-precedence configured
// backend. There is no fallback between backends within a single call.
type Router struct {
	backends []Backend
}

// NewRouter creates a router over backends in precedence order.
func NewRouter(backends ...Backend) *Router {
	return &Router{backends: backends}
}

// Backends returns the registered backend names in precedence order.
func (r *Router) Backends() []string {
	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name()
	}
	return names
}

// Summarize sends the prompt and transcript to the selected backend and
// returns its plain-text result.
func (r *Router) Summarize(ctx context.Context, prompt, text string) (string, error) {
	if len(r.backends) == 0 {
		return "", ErrNoBackend
	}
	backend := r.backends[0]
	slog.Debug("dispatching summary request", "backend", backend.Name())
	return backend.Summarize(ctx, prompt, text)
}

// Resolve builds the backend registry from configuration: OpenAI when a
// credential is present, then Ollama when an endpoint is present.
func Resolve(cfg config.Config) *Router {
	var backends []Backend
	if cfg.OpenAIKey != "" {
		backends = append(backends, NewOpenAI(cfg.OpenAIKey, cfg.Model))
	}
	if cfg.OllamaURL != "" {
		backends = append(backends, NewOllama(cfg.OllamaURL, cfg.Model))
	}
	return NewRouter(backends...)
}
