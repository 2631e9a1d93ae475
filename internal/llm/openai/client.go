package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"coverletter-backend/internal/llm"
)

const (
	defaultAPIURL      = "https://api.openai.com/v1/chat/completions"
	defaultTemperature = float32(0.7)
)

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float32
	apiURL      string
	httpClient  *http.Client
}

// Option overrides a client default.
type Option func(*Client)

// WithBaseURL points the client at a different completions endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.apiURL = url }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient constructs a new OpenAI client. The credential is injected here,
// never read from the environment inside business logic.
func NewClient(apiKey, model string, maxTokens int, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	c := &Client{
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: defaultTemperature,
		apiURL:      defaultAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the composed prompt as a single user message and returns
// the first choice, whitespace-trimmed. Failures surface as
// *llm.CompletionError and are never retried here.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	temp := c.temperature
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: &temp,
		MaxTokens:   c.maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", llm.NewCompletionError(llm.KindService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", llm.NewCompletionError(llm.KindTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", llm.NewCompletionError(llm.KindTransport, fmt.Errorf("openai request timeout: %w", err))
		}
		return "", llm.NewCompletionError(llm.KindTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", llm.NewCompletionError(llm.KindTransport, err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", llm.NewCompletionError(llm.KindService, fmt.Errorf("openai response parse: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", llm.NewCompletionError(llm.KindAuth, apiError(parsed, resp.StatusCode))
	}
	if parsed.Error != nil || resp.StatusCode >= http.StatusBadRequest {
		return "", llm.NewCompletionError(llm.KindService, apiError(parsed, resp.StatusCode))
	}
	if len(parsed.Choices) == 0 {
		return "", llm.NewCompletionError(llm.KindService, fmt.Errorf("openai response missing choices"))
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", llm.NewCompletionError(llm.KindService, fmt.Errorf("openai response empty content"))
	}
	return content, nil
}

func apiError(parsed chatResponse, status int) error {
	if parsed.Error != nil {
		return fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	return fmt.Errorf("openai error: status %d", status)
}

var _ llm.Client = (*Client)(nil)
