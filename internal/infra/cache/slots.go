// Package cache holds the Redis-backed slot cache. Slot listings are
// the hottest read path and recompute cheaply, so the cache is a plain
// short-TTL lookaside: every failure is treated as a miss.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotCache memoizes computed slot lists per stylist, date and
// service. Invalidation drops the whole (stylist, date) entry since
// any booking change on that day affects every service's slots.
type SlotCache interface {
	Get(ctx context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID) ([]time.Time, bool)
	Set(ctx context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID, slots []time.Time)
	Invalidate(ctx context.Context, stylistID uuid.UUID, date string)
}

type RedisSlotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSlotCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSlotCache {
	return &RedisSlotCache{client: client, ttl: ttl, logger: logger}
}

func slotKey(stylistID uuid.UUID, date string) string {
	return "slots:" + stylistID.String() + ":" + date
}

func (c *RedisSlotCache) Get(ctx context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID) ([]time.Time, bool) {
	raw, err := c.client.HGet(ctx, slotKey(stylistID, date), serviceID.String()).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("slot cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}
	var slots []time.Time
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		c.logger.Warn("slot cache entry corrupt", slog.String("error", err.Error()))
		return nil, false
	}
	return slots, true
}

func (c *RedisSlotCache) Set(ctx context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID, slots []time.Time) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	key := slotKey(stylistID, date)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, serviceID.String(), raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("slot cache write failed", slog.String("error", err.Error()))
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, stylistID uuid.UUID, date string) {
	if err := c.client.Del(ctx, slotKey(stylistID, date)).Err(); err != nil {
		c.logger.Warn("slot cache invalidation failed", slog.String("error", err.Error()))
	}
}

// NoopSlotCache disables caching when no Redis address is configured.
type NoopSlotCache struct{}

func (NoopSlotCache) Get(context.Context, uuid.UUID, string, uuid.UUID) ([]time.Time, bool) {
	return nil, false
}
func (NoopSlotCache) Set(context.Context, uuid.UUID, string, uuid.UUID, []time.Time) {}
func (NoopSlotCache) Invalidate(context.Context, uuid.UUID, string)                  {}
