package utils

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient implements CompletionClientInterface with the chat completions API.
// The chat API has no hosted search tool, so CompletionRequest.WebSearch is ignored.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	if model == "" {
		model = DefaultOpenAIModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClient) Provider() string { return "openai" }

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", c.wrapError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyModelReply
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) wrapError(err error) error {
	upErr := &UpstreamError{
		Provider: c.Provider(),
		Kind:     ClassifyUpstreamMessage(err.Error()),
		Message:  err.Error(),
		Err:      err,
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		upErr.StatusCode = apiErr.HTTPStatusCode
		upErr.Message = apiErr.Message
		code := fmt.Sprint(apiErr.Code)
		switch {
		case code == "insufficient_quota" || apiErr.Type == "insufficient_quota":
			upErr.Kind = UpstreamQuotaExceeded
		case code == "model_not_found" || apiErr.HTTPStatusCode == 404:
			upErr.Kind = UpstreamModelUnavailable
		}
		return upErr
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		upErr.StatusCode = reqErr.HTTPStatusCode
	}
	return upErr
}
