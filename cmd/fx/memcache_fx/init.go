package memcache_fx

import (
	"context"

	"go.uber.org/fx"

	"lingua/internal/config"
	"lingua/internal/infra"
	"lingua/pkg/logger"
	mem "lingua/pkg/memcache"
)

var Module = fx.Provide(provideMemcacheClient)

// provideMemcacheClient picks redis when CACHE_DRIVER=redis, otherwise a bounded in-process store.
func provideMemcacheClient(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (mem.Store, error) {
	if cfg.Cache.Driver == "redis" {
		rdb, err := infra.InitRedis(cfg)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return rdb.Close()
			},
		})
		log.Info("cache: redis", "addr", cfg.Cache.RedisAddr)
		return mem.NewRedisStore(rdb, cfg.Cache.RedisPrefix), nil
	}

	store := mem.NewMemoryStore(cfg.Cache.MaxEntries)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			store.Start(cfg.Cache.SweepInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			store.Stop()
			return nil
		},
	})
	log.Info("cache: memory", "max_entries", cfg.Cache.MaxEntries, "sweep_interval", cfg.Cache.SweepInterval.String())
	return store, nil
}
