package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis shares cached lookups between processes. Values are stored as JSON
// under "worktech:<namespace>:<key>". Redis failures are logged and treated
// as misses so a lookup always falls through to the database.
type Redis[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewRedis[V any](client *redis.Client, namespace string, ttl time.Duration, log logger.ZapLogger) *Redis[V] {
	return &Redis[V]{
		client: client,
		prefix: "worktech:" + namespace + ":",
		ttl:    ttl,
		logger: log,
	}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V

	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Redis cache get failed", zap.String("key", r.prefix+key), zap.Error(err))
		}
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		r.logger.Warn("Redis cache entry could not be decoded", zap.String("key", r.prefix+key), zap.Error(err))
		return value, false
	}
	return value, true
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("Redis cache entry could not be encoded", zap.String("key", r.prefix+key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("Redis cache set failed", zap.String("key", r.prefix+key), zap.Error(err))
	}
}

func (r *Redis[V]) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		r.logger.Warn("Redis cache delete failed", zap.String("key", r.prefix+key), zap.Error(err))
	}
}

func (r *Redis[V]) Flush(ctx context.Context) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Warn("Redis cache scan failed", zap.String("prefix", r.prefix), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("Redis cache flush failed", zap.String("prefix", r.prefix), zap.Error(err))
	}
}
