// Package client talks to an OpenAI-compatible chat-completions API and owns
// the configuration that call needs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// systemPrompt frames every completion request.
const systemPrompt = "You are an experienced programmer who writes great commit messages."

// Client is the HTTP client for the completion API.
type Client struct {
	config     *Config
	httpClient *http.Client
	log        *zap.Logger
	userAgent  string
}

// NewClient creates a new API client. A nil logger is replaced with a no-op
// one.
func NewClient(config *Config, version string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log:       log,
		userAgent: fmt.Sprintf("lazycommit/%s", version),
	}
}

// Complete sends one chat-completion request and returns the model's text.
// The prompt becomes the user message; model and maxTokens pass through
// verbatim. Temperature is pinned to zero so reruns stay close to
// deterministic.
func (c *Client) Complete(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	payload := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshaling completion request")
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "creating completion request")
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling completion API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading completion response")
	}

	c.log.Debug("completion API call finished",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_bytes", len(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(apiErrorDetail(resp.StatusCode, respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", errors.Wrap(err, "decoding completion response")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	if completion.Usage != nil {
		c.log.Debug("token usage",
			zap.Int("prompt_tokens", completion.Usage.PromptTokens),
			zap.Int("completion_tokens", completion.Usage.CompletionTokens))
	}

	return completion.Choices[0].Message.Content, nil
}

// apiErrorDetail extracts the service's error message, falling back to the
// raw body when the envelope doesn't decode.
func apiErrorDetail(status int, body []byte) string {
	var envelope apiErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Sprintf("completion API returned HTTP %d: %s", status, envelope.Error.Message)
	}
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Sprintf("completion API returned HTTP %d: %s", status, detail)
}

// setHeaders sets common HTTP headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("User-Agent", c.userAgent)
}
