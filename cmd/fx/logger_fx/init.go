package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"lingua/internal/config"
	"lingua/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Zap()}
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log.Zap())

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Sync()
			return nil
		},
	})
	return log, nil
}
