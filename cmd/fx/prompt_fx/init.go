package prompt_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"lingua/internal/config"
	"lingua/internal/services"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	services.NewPromptService)

// ProvideCompletionClient creates the chat completion client for AI_PROVIDER.
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (utils.CompletionClient, error) {
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for AI provider %q", cfg.AI.Provider)
	}

	client, err := utils.NewCompletionClient(utils.CompletionConfig{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Timeout:  cfg.AI.Timeout,
		Referer:  cfg.AI.Referer,
		Title:    cfg.AI.Title,
	})
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	log.Info("Initialized completion client", "provider", cfg.AI.Provider, "model", cfg.AI.Model, "chat_model", cfg.AI.ChatModel)
	return client, nil
}
