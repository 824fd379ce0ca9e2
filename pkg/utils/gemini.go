package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient implements CompletionClientInterface using Google's Gemini models.
// Search grounding is not requested; WebSearch is ignored.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Provider() string { return "gemini" }

func (c *GeminiClient) Model() string { return c.model }

func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", c.wrapError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyModelReply
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyModelReply
	}
	return text.String(), nil
}

func (c *GeminiClient) wrapError(err error) error {
	upErr := &UpstreamError{
		Provider: c.Provider(),
		Kind:     ClassifyUpstreamMessage(err.Error()),
		Message:  err.Error(),
		Err:      err,
	}
	switch status.Code(err) {
	case codes.ResourceExhausted:
		upErr.Kind = UpstreamQuotaExceeded
	case codes.NotFound:
		upErr.Kind = UpstreamModelUnavailable
	}
	return upErr
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// NewCompletionClient builds the client for the named provider.
func NewCompletionClient(ctx context.Context, provider, apiKey, model, baseURL string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "anthropic", "":
		var opts []AnthropicOption
		if baseURL != "" {
			opts = append(opts, WithAnthropicBaseURL(baseURL))
		}
		return NewAnthropicClient(apiKey, model, opts...), nil
	case "openai":
		return NewOpenAIClient(apiKey, model, baseURL), nil
	case "gemini":
		return NewGeminiClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLLM, provider)
	}
}
