// Package cachemanager provides a typed in-memory cache and a read-through
// wrapper used to memoize expensive lookups such as image header decoding.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
	Len() int
}
