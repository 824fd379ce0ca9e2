package llm_fx

import (
	"context"
	"fmt"
	"io"

	"activityfinder/internal/infra"
	"activityfinder/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(ProvideCompletionClient)

// ProvideCompletionClient creates the model client for the configured provider
func ProvideCompletionClient(lc fx.Lifecycle, cfg infra.Config, logger *zap.Logger) (utils.CompletionClientInterface, error) {
	apiKey, model, baseURL := cfg.LLMCredentials()

	logger.Info("initializing llm client",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", model))

	client, err := utils.NewCompletionClient(context.Background(), cfg.LLMProvider, apiKey, model, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLMProvider, err)
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}
