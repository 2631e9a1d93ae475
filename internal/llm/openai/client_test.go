package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coverletter-backend/internal/llm"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient("test-key", "gpt-3.5-turbo", 600, WithBaseURL(url))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestCompleteSuccessTrimsContent(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  Dear Hiring Manager,\n\nBody.  \n"}},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	letter, err := client.Complete(context.Background(), "write me a letter")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if letter != "Dear Hiring Manager,\n\nBody." {
		t.Fatalf("content not trimmed: %q", letter)
	}

	if captured["model"] != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %v", captured["model"])
	}
	if captured["temperature"] != 0.7 {
		t.Fatalf("unexpected temperature: %v", captured["temperature"])
	}
	if captured["max_tokens"] != float64(600) {
		t.Fatalf("unexpected max_tokens: %v", captured["max_tokens"])
	}
	messages, ok := captured["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected a single message, got %v", captured["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" {
		t.Fatalf("expected user role, got %v", msg["role"])
	}
	if msg["content"] != "write me a letter" {
		t.Fatalf("expected prompt verbatim, got %v", msg["content"])
	}
}

func TestCompleteAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")

	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if completionErr.Kind != llm.KindAuth {
		t.Fatalf("expected auth kind, got %s", completionErr.Kind)
	}
}

func TestCompleteServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")

	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if completionErr.Kind != llm.KindService {
		t.Fatalf("expected service kind, got %s", completionErr.Kind)
	}
}

func TestCompleteMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")

	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if completionErr.Kind != llm.KindService {
		t.Fatalf("expected service kind, got %s", completionErr.Kind)
	}
}

func TestCompleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), "prompt")

	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		t.Fatalf("expected CompletionError, got %v", err)
	}
	if completionErr.Kind != llm.KindTransport {
		t.Fatalf("expected transport kind, got %s", completionErr.Kind)
	}
}

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient("", "gpt-3.5-turbo", 600); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", "", 600); err == nil {
		t.Fatal("expected error for missing model")
	}
	if _, err := NewClient("key", "gpt-3.5-turbo", 0); err == nil {
		t.Fatal("expected error for non-positive max tokens")
	}
}
