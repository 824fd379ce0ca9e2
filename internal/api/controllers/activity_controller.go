package controllers

import (
	"fmt"
	"runtime/debug"

	"activityfinder/internal/infra"
	"activityfinder/internal/models/request_models"
	"activityfinder/internal/services"
	"activityfinder/pkg/metrics"
	"activityfinder/pkg/middleware"
	"activityfinder/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
	cfg             infra.Config
	logger          *zap.Logger
}

func NewActivityController(activityService services.ActivityServiceInterface, cfg infra.Config, logger *zap.Logger) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		cfg:             cfg,
		logger:          logger,
	}
}

// POST /api/activities
func (a *ActivityController) RecommendActivitiesHandler(c *gin.Context) {
	logger := a.logger.With(zap.String(middleware.TraceIDKey, c.GetString(middleware.TraceIDKey)))

	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncActivityRequest(metrics.OutcomeInvalid)
		utils.HandleServiceError(c, fmt.Errorf("%w: %v", utils.ErrInvalidBody, err), "")
		return
	}
	logger.Info("received activity request",
		zap.String("city", req.City),
		zap.String("kidsAges", req.KidsAges),
		zap.String("availability", req.Availability),
		zap.String("travelDistance", req.TravelDistance),
		zap.String("preferences", req.Preferences))

	// 1. Validate before anything reaches the model
	if missing := req.MissingFields(); len(missing) > 0 {
		metrics.IncActivityRequest(metrics.OutcomeInvalid)
		utils.RespondMissingFields(c, missing)
		return
	}

	// 2. Ask the model, falling back to canned data when it is unusable
	resp, err := a.activityService.RecommendActivities(c.Request.Context(), req)
	if err != nil {
		logger.Error("activity recommendation failed", zap.Error(err))
		_ = c.Error(err)

		var details string
		if a.cfg.IsDevelopment() {
			details = fmt.Sprintf("%+v\n%s", err, debug.Stack())
		}
		utils.HandleServiceError(c, err, details)
		return
	}

	utils.RespondSuccess(c, resp)
}
