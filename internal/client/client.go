package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"activityfinder/internal/models/request_models"
	"activityfinder/internal/models/response_models"
)

const DefaultBaseURL = "http://localhost:3001"

var ErrInvalidResponse = errors.New("invalid response format from API")

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client talks to the activity finder HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindActivities posts the form and returns the server's activities. Any
// non-2xx status or a body without success and activities is an error.
func (c *Client) FindActivities(ctx context.Context, form request_models.ActivityRequest) (response_models.ActivityResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return response_models.ActivityResponse{}, fmt.Errorf("marshal form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/activities", bytes.NewReader(body))
	if err != nil {
		return response_models.ActivityResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response_models.ActivityResponse{}, fmt.Errorf("call api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return response_models.ActivityResponse{}, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	var out struct {
		Success    bool                        `json:"success"`
		Activities *[]response_models.Activity `json:"activities"`
		Count      int                         `json:"count"`
		Note       string                      `json:"note"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return response_models.ActivityResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if !out.Success || out.Activities == nil {
		return response_models.ActivityResponse{}, ErrInvalidResponse
	}

	return response_models.ActivityResponse{
		Success:    true,
		Activities: *out.Activities,
		Count:      out.Count,
		Note:       out.Note,
	}, nil
}
