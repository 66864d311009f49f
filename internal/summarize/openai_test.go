package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newOpenAIAgainst(serverURL, model string) *OpenAI {
	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = serverURL + "/v1"
	return newOpenAI(cfg, model)
}

func TestOpenAISummarizeSuccess(t *testing.T) {
	t.Parallel()

	var gotReq struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  gotReq.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": "# Meeting Summary"},
				},
			},
		})
	}))
	defer server.Close()

	b := newOpenAIAgainst(server.URL, "gpt-3.5-turbo")
	got, err := b.Summarize(context.Background(), "SYSTEM PROMPT", "TRANSCRIPT")
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if got != "# Meeting Summary" {
		t.Errorf("result = %q", got)
	}

	if gotReq.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "SYSTEM PROMPT" {
		t.Errorf("system message = %+v", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != "user" || gotReq.Messages[1].Content != "TRANSCRIPT" {
		t.Errorf("user message = %+v", gotReq.Messages[1])
	}
}

func TestOpenAISummarizeAPIErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad key", "type": "invalid_request_error"},
		})
	}))
	defer server.Close()

	b := newOpenAIAgainst(server.URL, "gpt-3.5-turbo")
	_, err := b.Summarize(context.Background(), "p", "t")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", reqErr.Status)
	}
	if reqErr.Backend != "openai" {
		t.Errorf("Backend = %q, want openai", reqErr.Backend)
	}
}

func TestOpenAISummarizeNoChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-2",
			"object":  "chat.completion",
			"choices": []any{},
		})
	}))
	defer server.Close()

	b := newOpenAIAgainst(server.URL, "gpt-3.5-turbo")
	_, err := b.Summarize(context.Background(), "p", "t")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
