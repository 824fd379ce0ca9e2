package config_fx

import (
	"activityfinder/internal/infra"

	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideConfig)

// ProvideConfig fails startup when the selected provider has no credential,
// so no handler is ever wired without one.
func ProvideConfig() (infra.Config, error) {
	cfg := infra.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return infra.Config{}, err
	}
	return cfg, nil
}
