package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"activityfinder/internal/models/request_models"
	"activityfinder/internal/models/response_models"
	"activityfinder/pkg/metrics"
	"activityfinder/pkg/utils"

	"go.uber.org/zap"
)

const activityMaxTokens = 2000

type ActivityServiceInterface interface {
	RecommendActivities(ctx context.Context, req request_models.ActivityRequest) (response_models.ActivityResponse, error)
}

type ActivityService struct {
	llm    utils.CompletionClientInterface
	logger *zap.Logger
}

func NewActivityService(llm utils.CompletionClientInterface, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		llm:    llm,
		logger: logger,
	}
}

// RecommendActivities asks the model once for recommendations. Billing and
// model-availability failures are answered with canned activities and a note;
// any other upstream failure is returned to the caller.
func (s *ActivityService) RecommendActivities(ctx context.Context, req request_models.ActivityRequest) (response_models.ActivityResponse, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return response_models.ActivityResponse{}, fmt.Errorf("%w: %s", utils.ErrMissingFields, strings.Join(missing, ", "))
	}

	prompt := BuildActivityPrompt(req)
	s.logger.Debug("generated prompt", zap.String("preview", preview(prompt, 100)))

	reply, err := s.complete(ctx, prompt)
	if err != nil {
		if utils.IsDegradedUpstream(err) {
			s.logger.Warn("model unavailable, serving fallback activities",
				zap.String("city", req.City),
				zap.Error(err))
			metrics.IncActivityRequest(metrics.OutcomeDegraded)
			return response_models.NewActivityResponse(GenerateFallbackActivities(req), demoModeNote), nil
		}
		metrics.IncActivityRequest(metrics.OutcomeError)
		return response_models.ActivityResponse{}, err
	}

	s.logger.Debug("model reply received", zap.String("preview", preview(reply, 200)))

	activities, fallback := parseRecommendations(reply)
	if fallback != "" {
		metrics.IncParseFallback(fallback)
		s.logger.Warn("model reply had no parseable activities", zap.String("reason", fallback))
	}
	s.logger.Info("parsed activities", zap.Int("count", len(activities)))

	metrics.IncActivityRequest(metrics.OutcomeSuccess)
	return response_models.NewActivityResponse(activities, ""), nil
}

func (s *ActivityService) complete(ctx context.Context, prompt string) (string, error) {
	provider := s.llm.Provider()
	metrics.IncLLMRequest(provider, s.llm.Model())

	start := time.Now()
	reply, err := s.llm.Complete(ctx, utils.CompletionRequest{
		System:    activitySystemPrompt,
		Prompt:    prompt,
		MaxTokens: activityMaxTokens,
		WebSearch: true,
	})
	metrics.ObserveLLMDuration(provider, time.Since(start).Seconds())
	return reply, err
}

func preview(s string, n int) string {
	return excerpt(s, n) + "..."
}
