package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"barberbook/internal/infra/cache"
	"barberbook/internal/pkg/config"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSlotCache,
	),
)

// NewSlotCache wires the Redis-backed slot cache when an address is
// configured, otherwise slot listings are recomputed on every request.
func NewSlotCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.SlotCache {
	if cfg.Redis.Addr == "" {
		logger.Info("no Redis configured, slot caching disabled")
		return cache.NoopSlotCache{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisSlotCache(client, cfg.Redis.SlotTTL, logger)
}
