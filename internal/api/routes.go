package api

import (
	"activityfinder/internal/api/controllers"
	"activityfinder/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine,
	activityController *controllers.ActivityController,
	healthController *controllers.HealthController) {

	apiGroup := r.Group("/api")
	apiGroup.POST("/activities", activityController.RecommendActivitiesHandler)
	apiGroup.GET("/health", healthController.HealthHandler)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
