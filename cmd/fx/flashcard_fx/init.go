package flashcard_fx

import (
	"go.uber.org/fx"

	"lingua/internal/config"
	"lingua/internal/services"
	"lingua/pkg/logger"
	mem "lingua/pkg/memcache"
)

var Module = fx.Provide(
	provideTranslator,
	services.NewFlashcardService)

func provideTranslator(cfg *config.Config, store mem.Store, log *logger.Logger) services.Translator {
	return services.NewCachingTranslator(
		services.NewMyMemoryTranslator(cfg),
		store,
		cfg.Translation.CacheTTL,
		log.With("component", "translator"),
	)
}
