package controllers_fx

import (
	"activityfinder/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewHealthController))
