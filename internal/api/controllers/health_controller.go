package controllers

import (
	"time"

	"activityfinder/internal/infra"
	"activityfinder/internal/models/response_models"
	"activityfinder/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg infra.Config
	now func() time.Time
}

func NewHealthController(cfg infra.Config) *HealthController {
	return &HealthController{cfg: cfg, now: time.Now}
}

// GET /api/health
func (h *HealthController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{
		Status:              "OK",
		Timestamp:           utils.FormatISO8601(h.now()),
		AnthropicConfigured: h.cfg.AnthropicConfigured(),
		Provider:            h.cfg.LLMProvider,
	})
}
