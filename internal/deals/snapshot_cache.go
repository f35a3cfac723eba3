package deals

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/redis"
)

// SharedCache shares a deal snapshot between service instances. Failures are
// absorbed by implementations; the catalog always falls through to the
// upstream fetch.
type SharedCache interface {
	GetSnapshot(ctx context.Context) ([]Deal, bool)
	SetSnapshot(ctx context.Context, snapshot []Deal)
}

// RedisSnapshotCache stores the serialized deal snapshot in Redis so warm
// instances can skip the upstream fetch after a restart or scale-out.
type RedisSnapshotCache struct {
	client *redis.Client
	logg   *logger.Logger
	ttl    time.Duration
}

// NewRedisSnapshotCache builds the shared snapshot cache. The TTL should
// match the in-memory snapshot TTL.
func NewRedisSnapshotCache(client *redis.Client, logg *logger.Logger, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, logg: logg, ttl: ttl}
}

func (c *RedisSnapshotCache) GetSnapshot(ctx context.Context) ([]Deal, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, redis.SnapshotKey("deals"))
	if err != nil {
		if !redis.IsMissing(err) && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "shared snapshot read failed")
		}
		return nil, false
	}
	var snap []Deal
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "shared snapshot is corrupt, ignoring")
		}
		return nil, false
	}
	return snap, true
}

func (c *RedisSnapshotCache) SetSnapshot(ctx context.Context, snapshot []Deal) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "shared snapshot encode failed")
		}
		return
	}
	if err := c.client.Set(ctx, redis.SnapshotKey("deals"), string(raw), c.ttl); err != nil && c.logg != nil {
		c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "shared snapshot write failed")
	}
}
