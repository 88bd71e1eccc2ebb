package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache stores JSON encoded values by key.
type Cache interface {
	GetCache(ctx context.Context, key string, out interface{}) (bool, error)
	SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteCache(ctx context.Context, key string) error
	Close() error
}

type redisCache struct {
	rdb *goredis.Client
}

/*
* Parse the url and ping the server
* An empty url yields a cache that never hits
 */
func Connect(ctx context.Context, url string) (Cache, error) {
	if url == "" {
		log.Info().Msg("REDIS_URL not set, catalog cache disabled")
		return NoopCache{}, nil
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info().Str("addr", opts.Addr).Msg("Redis Connected")
	return &redisCache{rdb: rdb}, nil
}

func NewCache(rdb *goredis.Client) Cache {
	return &redisCache{rdb: rdb}
}

func (r *redisCache) GetCache(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (r *redisCache) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, raw, ttl).Err()
}

func (r *redisCache) DeleteCache(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}

func (r *redisCache) Close() error {
	return r.rdb.Close()
}

// NoopCache misses on every read and drops every write.
type NoopCache struct{}

func (NoopCache) GetCache(context.Context, string, interface{}) (bool, error) { return false, nil }

func (NoopCache) SetCache(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) DeleteCache(context.Context, string) error { return nil }

func (NoopCache) Close() error { return nil }
