package session

import (
	"context"
	"time"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/pkg/redis"
)

// RedisSnapshots stores built datasets in Redis keyed by seed and universe hash.
// Builds are deterministic, so a snapshot is interchangeable with a fresh build.
type RedisSnapshots struct {
	cache *redis.Cache
	ttl   time.Duration
}

// NewRedisSnapshots creates a Redis-backed snapshot store
func NewRedisSnapshots(cache *redis.Cache, ttl time.Duration) *RedisSnapshots {
	return &RedisSnapshots{cache: cache, ttl: ttl}
}

// Load fetches a snapshot
func (r *RedisSnapshots) Load(ctx context.Context, seed int64, universeHash string) (*contracts.Dataset, bool, error) {
	var ds contracts.Dataset
	found, err := r.cache.Get(ctx, redis.SnapshotKey(seed, universeHash), &ds)
	if err != nil || !found {
		return nil, false, err
	}
	return &ds, true, nil
}

// Save stores a snapshot
func (r *RedisSnapshots) Save(ctx context.Context, ds *contracts.Dataset) error {
	return r.cache.Set(ctx, redis.SnapshotKey(ds.Seed, ds.UniverseHash), ds, r.ttl)
}
