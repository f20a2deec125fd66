// Package cache holds the short-lived lookup caches that sit in front of the
// simple getters. Entries expire a fixed time after they are set; writes never
// read through a cache.
package cache

import (
	"context"
	"time"

	"github.com/fekuna/worktech-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	DefaultTTL = 10 * time.Second
)

type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V)
	Delete(ctx context.Context, key string)
	// Flush drops every entry in the cache.
	Flush(ctx context.Context)
}

type Options struct {
	Backend string
	TTL     time.Duration
	Size    int
	Redis   *redis.Client
	Logger  logger.ZapLogger
}

// New builds a cache for one namespace, e.g. "workOrders" or "equipment".
func New[V any](namespace string, opts *Options) Cache[V] {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if opts.Backend == BackendRedis && opts.Redis != nil {
		log := opts.Logger
		if log == nil {
			log = logger.NewNop()
		}
		return NewRedis[V](opts.Redis, namespace, ttl, log)
	}
	return NewMemory[V](opts.Size, ttl)
}
