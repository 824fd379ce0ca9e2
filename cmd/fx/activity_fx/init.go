package activity_fx

import (
	"activityfinder/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(services.NewActivityService)
