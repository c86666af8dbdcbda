package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"lingua/cmd/fx/account_fx"
	"lingua/cmd/fx/chat_fx"
	"lingua/cmd/fx/config_fx"
	"lingua/cmd/fx/content_fx"
	"lingua/cmd/fx/controllers_fx"
	"lingua/cmd/fx/db_fx"
	"lingua/cmd/fx/flashcard_fx"
	"lingua/cmd/fx/lesson_fx"
	"lingua/cmd/fx/logger_fx"
	"lingua/cmd/fx/memcache_fx"
	"lingua/cmd/fx/prompt_fx"
	"lingua/cmd/fx/quiz_fx"
	"lingua/internal/config"
	"lingua/pkg/logger"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		content_fx.Module,
		quiz_fx.Module,
		flashcard_fx.Module,
		chat_fx.Module,
		lesson_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", "addr", srv.Addr, "env", cfg.Env)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
