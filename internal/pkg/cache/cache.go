// Package cache keeps derived statistics in Redis between writes.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	teamRatioKey  = "timetracker:stats:team_ratio"
	generationKey = "timetracker:stats:generation"
)

// setIfGeneration stores the ratio (KEYS[1]) only while the generation
// (KEYS[2]) still equals ARGV[2]. ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfGeneration = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// test the connection
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisCacheWithClient(client, ttl), nil
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetTeamRatio(ctx context.Context) (string, bool, error) {
	ratio, err := c.client.Get(ctx, teamRatioKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get team ratio: %w", err)
	}
	return ratio, true, nil
}

func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get stats generation: %w", err)
	}
	return generation, nil
}

func (c *RedisCache) SetTeamRatio(ctx context.Context, ratio string, generation int64) (bool, error) {
	keys := []string{teamRatioKey, generationKey}
	stored, err := setIfGeneration.Run(ctx, c.client, keys, ratio, generation, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to set team ratio: %w", err)
	}
	return stored == 1, nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, teamRatioKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate stats: %w", err)
	}
	return nil
}

// Noop never holds anything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) GetTeamRatio(context.Context) (string, bool, error) { return "", false, nil }
func (Noop) Generation(context.Context) (int64, error) { return 0, nil }
func (Noop) SetTeamRatio(context.Context, string, int64) (bool, error) { return false, nil }
func (Noop) Invalidate(context.Context) error { return nil }
