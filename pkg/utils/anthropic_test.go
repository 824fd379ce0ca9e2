package utils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicCompleteSendsRequest(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [
				{"type": "text", "text": "Let me search."},
				{"type": "server_tool_use", "id": "srvtoolu_1", "name": "web_search", "input": {"query": "kids"}},
				{"type": "web_search_tool_result", "tool_use_id": "srvtoolu_1", "content": []},
				{"type": "text", "text": "\n**Zoo**\nFun."}
			],
			"stop_reason": "end_turn"
		}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("sk-test", "", WithAnthropicBaseURL(srv.URL+"/"))
	text, err := c.Complete(context.Background(), CompletionRequest{
		System:    "be helpful",
		Prompt:    "find things",
		MaxTokens: 2000,
		WebSearch: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Let me search.\n**Zoo**\nFun.", text)

	assert.Equal(t, DefaultAnthropicModel, got["model"])
	assert.EqualValues(t, 2000, got["max_tokens"])
	assert.Equal(t, "be helpful", got["system"])
	assert.Equal(t, []any{map[string]any{"role": "user", "content": "find things"}}, got["messages"])
	assert.Equal(t, []any{map[string]any{"type": "web_search_20250305", "name": "web_search"}}, got["tools"])
}

func TestAnthropicCompleteWithoutSearchOmitsTools(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"ok"}]}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("sk", "claude-test", WithAnthropicBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "hi", MaxTokens: 10})

	require.NoError(t, err)
	assert.NotContains(t, got, "tools")
	assert.Equal(t, "claude-test", got["model"])
}

func TestAnthropicCompleteErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind UpstreamErrorKind
		degraded bool
	}{
		{
			name:     "model not found",
			status:   http.StatusNotFound,
			body:     `{"type":"error","error":{"type":"not_found_error","message":"model: claude-3-5-sonnet-20240620"}}`,
			wantKind: UpstreamModelUnavailable,
			degraded: true,
		},
		{
			name:     "credit balance",
			status:   http.StatusBadRequest,
			body:     `{"type":"error","error":{"type":"invalid_request_error","message":"Your credit balance is too low to access the Anthropic API."}}`,
			wantKind: UpstreamQuotaExceeded,
			degraded: true,
		},
		{
			name:     "overloaded",
			status:   529,
			body:     `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
			wantKind: UpstreamUnknown,
		},
		{
			name:     "non json body",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: UpstreamUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewAnthropicClient("sk", "", WithAnthropicBaseURL(srv.URL))
			_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "x", MaxTokens: 1})

			var upErr *UpstreamError
			require.True(t, errors.As(err, &upErr))
			assert.Equal(t, tt.wantKind, upErr.Kind)
			assert.Equal(t, tt.status, upErr.StatusCode)
			assert.Contains(t, err.Error(), tt.body)
			assert.Equal(t, tt.degraded, IsDegradedUpstream(err))
		})
	}
}

func TestAnthropicCompleteNoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"server_tool_use","id":"x","name":"web_search","input":{}}]}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("sk", "", WithAnthropicBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "x", MaxTokens: 1})

	assert.ErrorIs(t, err, ErrEmptyModelReply)
}

func TestAnthropicCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewAnthropicClient("sk", "", WithAnthropicBaseURL(url))
	_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "x", MaxTokens: 1})

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, UpstreamUnknown, upErr.Kind)
	assert.False(t, IsDegradedUpstream(err))
}
