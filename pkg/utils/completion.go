package utils

import "context"

// CompletionRequest is a single-turn request to a hosted text-generation model.
type CompletionRequest struct {
	System    string
	Prompt    string
	MaxTokens int
	WebSearch bool
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Model() string
}
