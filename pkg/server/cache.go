package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

const maxLocalEntries = 4096

type LocalEntry struct {
	Expires time.Time
	Data    []byte
}

// Cache is a two level cache: a process local map in front of an optional
// shared redis. Values are stored json encoded in both.
type Cache struct {
	mu       sync.RWMutex
	client   *redis.Client
	ttl      time.Duration
	prefix   string
	memCache map[string]LocalEntry
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:      ttl,
		prefix:   "craft:",
		memCache: make(map[string]LocalEntry),
	}
}

// NewRedisCache backs the local cache with redis. url is either a redis://
// url or a host:port address.
func NewRedisCache(url, password string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	if password != "" {
		opts.Password = password
	}
	c := NewCache(ttl)
	c.client = redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.client.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) getLocal(key string) ([]byte, bool) {
	c.mu.RLock()
	local, found := c.memCache[key]
	c.mu.RUnlock()
	if !found {
		return nil, false
	}
	if local.Expires.Before(time.Now()) {
		c.mu.Lock()
		delete(c.memCache, key)
		c.mu.Unlock()
		return nil, false
	}
	return local.Data, true
}

func (c *Cache) setLocal(key string, data []byte, expiration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.memCache) >= maxLocalEntries {
		now := time.Now()
		for k, e := range c.memCache {
			if e.Expires.Before(now) {
				delete(c.memCache, k)
			}
		}
		if len(c.memCache) >= maxLocalEntries {
			c.memCache = make(map[string]LocalEntry)
		}
	}
	c.memCache[key] = LocalEntry{Expires: time.Now().Add(expiration), Data: data}
}

func (c *Cache) Get(ctx context.Context, key string, out any) error {
	data, found := c.getLocal(key)
	if !found {
		if c.client == nil {
			return ErrCacheMiss
		}
		remote, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		if err != nil {
			return err
		}
		data = remote
		c.setLocal(key, data, min(time.Minute, c.ttl))
	}
	return jsoncompat.Unmarshal(data, out)
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := jsoncompat.Marshal(value)
	if err != nil {
		return err
	}
	c.setLocal(key, data, c.ttl)
	if c.client == nil {
		return nil
	}
	return c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
