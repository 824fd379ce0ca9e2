package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"activityfinder/internal/infra"
	"activityfinder/internal/models/response_models"
	"activityfinder/internal/services"
	"activityfinder/pkg/middleware"
	"activityfinder/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Complete(context.Context, utils.CompletionRequest) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Provider() string { return "anthropic" }

func (s *stubLLM) Model() string { return "stub" }

func newRouter(t *testing.T, llm utils.CompletionClientInterface, cfg infra.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	activity := NewActivityController(services.NewActivityService(llm, logger), cfg, logger)
	health := NewHealthController(cfg)
	health.now = func() time.Time { return time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC) }

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.POST("/api/activities", activity.RecommendActivitiesHandler)
	r.GET("/api/health", health.HealthHandler)
	return r
}

func postActivities(t *testing.T, r http.Handler, body any) *httptest.ResponseRecorder {
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]string {
	return map[string]string{
		"city":           "Seattle",
		"kidsAges":       "6-10",
		"availability":   "Saturday afternoon",
		"travelDistance": "15",
		"preferences":    "outdoor",
	}
}

func TestRecommendActivitiesHandlerMissingField(t *testing.T) {
	for _, field := range []string{"city", "kidsAges", "availability", "travelDistance"} {
		t.Run(field, func(t *testing.T) {
			llm := &stubLLM{reply: "**A**\nb"}
			r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

			body := validBody()
			delete(body, field)
			w := postActivities(t, r, body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp response_models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required fields", resp.Error)
			assert.Contains(t, resp.Required, field)
			assert.Zero(t, llm.calls)
		})
	}
}

func TestRecommendActivitiesHandlerInvalidJSON(t *testing.T) {
	llm := &stubLLM{}
	r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

	w := postActivities(t, r, `{"city": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
	assert.Zero(t, llm.calls)
}

func TestRecommendActivitiesHandlerBlankFieldListsOnlyThatField(t *testing.T) {
	llm := &stubLLM{reply: "**A**\nb"}
	r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

	body := validBody()
	body["availability"] = "   "
	w := postActivities(t, r, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp response_models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"availability"}, resp.Required)
	assert.Zero(t, llm.calls)
}

func TestRecommendActivitiesHandlerNumericFieldRejected(t *testing.T) {
	llm := &stubLLM{reply: "**A**\nb"}
	r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

	w := postActivities(t, r, `{"city":"Seattle","kidsAges":"6-10","availability":"Sunday","travelDistance":15}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp response_models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request body", resp.Error)
	assert.Contains(t, resp.Message, "travelDistance")
	assert.Zero(t, llm.calls)
}

func TestRecommendActivitiesHandlerSuccess(t *testing.T) {
	llm := &stubLLM{reply: "**Zoo**\nLions and tigers.\n\n**Museum**\nDinosaurs.\n"}
	r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

	w := postActivities(t, r, validBody())

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.TraceIDHeader))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 2, resp["count"])
	assert.NotContains(t, resp, "note")

	activities := resp["activities"].([]any)
	require.Len(t, activities, 2)
	first := activities[0].(map[string]any)
	assert.EqualValues(t, 1, first["id"])
	assert.Equal(t, "Zoo", first["title"])
	assert.Equal(t, "Lions and tigers.", first["description"])
}

func TestRecommendActivitiesHandlerCreditBalanceFallback(t *testing.T) {
	llm := &stubLLM{err: errors.New("400 Your credit balance is too low to access the Anthropic API.")}
	r := newRouter(t, llm, infra.Config{AnthropicAPIKey: "sk"})

	w := postActivities(t, r, validBody())

	require.Equal(t, http.StatusOK, w.Code)
	var resp response_models.ActivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Note)
	assert.Len(t, resp.Activities, 5)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, "Nature Trail & Outdoor Adventure", resp.Activities[1].Title)
}

func TestRecommendActivitiesHandlerUpstreamError(t *testing.T) {
	upErr := &utils.UpstreamError{Provider: "anthropic", StatusCode: 529, Message: "Overloaded"}

	t.Run("production hides details", func(t *testing.T) {
		r := newRouter(t, &stubLLM{err: upErr}, infra.Config{AnthropicAPIKey: "sk", Environment: "production"})

		w := postActivities(t, r, validBody())

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to get activity recommendations", resp["error"])
		assert.Equal(t, upErr.Error(), resp["message"])
		assert.NotContains(t, resp, "details")
	})

	t.Run("development includes details", func(t *testing.T) {
		r := newRouter(t, &stubLLM{err: upErr}, infra.Config{AnthropicAPIKey: "sk", Environment: "development"})

		w := postActivities(t, r, validBody())

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp response_models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Details)
	})
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name string
		cfg  infra.Config
		want bool
	}{
		{"credential unset", infra.Config{LLMProvider: "anthropic"}, false},
		{"credential set", infra.Config{LLMProvider: "anthropic", AnthropicAPIKey: "sk-ant"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &stubLLM{}, tt.cfg)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var resp response_models.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, "2025-06-07T08:09:10.000Z", resp.Timestamp)
			assert.Equal(t, tt.want, resp.AnthropicConfigured)
			assert.Equal(t, "anthropic", resp.Provider)
		})
	}
}
