package server

import (
	"context"
	"errors"
	"log"
)

type CacheHelper[T any] struct {
	Cache *Cache
}

func NewCacheHelper[T any](cache *Cache) *CacheHelper[T] {
	return &CacheHelper[T]{Cache: cache}
}

// Handle returns the cached value for key or computes and stores it with fn.
// Cache failures are logged and fall back to fn. The bool reports a hit.
func (c *CacheHelper[T]) Handle(ctx context.Context, key string, fn func() T) (T, bool) {
	if c == nil || c.Cache == nil {
		return fn(), false
	}
	var out T
	err := c.Cache.Get(ctx, key, &out)
	if err == nil {
		return out, true
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Printf("Cache get failed for %s: %v", key, err)
	}
	out = fn()
	if err = c.Cache.Set(ctx, key, out); err != nil {
		log.Printf("Cache set failed for %s: %v", key, err)
	}
	return out, false
}
