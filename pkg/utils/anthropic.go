package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
	DefaultAnthropicModel   = "claude-3-5-sonnet-20240620"
	anthropicVersion        = "2023-06-01"
)

type AnthropicOption func(*AnthropicClient)

// WithAnthropicBaseURL points the client at another host, e.g. an httptest server.
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

func WithAnthropicHTTPClient(hc *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.httpClient = hc
	}
}

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewAnthropicClient(apiKey, model string, opts ...AnthropicOption) *AnthropicClient {
	if model == "" {
		model = DefaultAnthropicModel
	}
	c := &AnthropicClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    DefaultAnthropicBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *AnthropicClient) Provider() string { return "anthropic" }

func (c *AnthropicClient) Model() string { return c.model }

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Tools     []anthropicTool    `json:"tools,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicTool only covers server tools, which need no input schema.
type anthropicTool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

var webSearchTool = anthropicTool{Type: "web_search_20250305", Name: "web_search"}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text,omitempty"`
	} `json:"content"`
}

type anthropicErrorResponse struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one message and returns the concatenated text blocks of the reply.
// Search results and tool-use blocks are skipped.
func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	payload := anthropicRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.Prompt},
		},
	}
	if req.WebSearch {
		payload.Tools = []anthropicTool{webSearchTool}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("anthropic: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Provider: c.Provider(), Kind: UpstreamUnknown, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Provider: c.Provider(), Kind: UpstreamUnknown, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp.StatusCode, respBody)
	}

	var out anthropicResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", err)
	}

	var text strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyModelReply
	}
	return text.String(), nil
}

// decodeError keeps the raw body in the message so that the error type
// (e.g. not_found_error) stays visible to callers matching on text.
func (c *AnthropicClient) decodeError(status int, body []byte) error {
	upErr := &UpstreamError{
		Provider:   c.Provider(),
		Kind:       ClassifyUpstreamMessage(string(body)),
		StatusCode: status,
		Message:    strings.TrimSpace(string(body)),
	}

	var apiErr anthropicErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		switch {
		case apiErr.Error.Type == "not_found_error":
			upErr.Kind = UpstreamModelUnavailable
		case strings.Contains(apiErr.Error.Message, "credit balance"):
			upErr.Kind = UpstreamQuotaExceeded
		}
	}
	return upErr
}
