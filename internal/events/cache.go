package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache holds short-lived copies of the upstream token and event collection
// so page renders don't hammer the WaoCard API.
type Cache interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string, ttl time.Duration) error
	GetEvents(ctx context.Context) ([]Event, error)
	SetEvents(ctx context.Context, evs []Event, ttl time.Duration) error
}

const (
	tokenKey  = "waocard:access_token"
	eventsKey = "waocard:events"
)

// RedisCache implements Cache on a shared redis client.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) GetToken(ctx context.Context) (string, error) {
	val, err := c.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	} else if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisCache) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, tokenKey, token, ttl).Err()
}

func (c *RedisCache) GetEvents(ctx context.Context) ([]Event, error) {
	val, err := c.client.Get(ctx, eventsKey).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var evs []Event
	if err := json.Unmarshal([]byte(val), &evs); err != nil {
		return nil, err
	}
	return evs, nil
}

func (c *RedisCache) SetEvents(ctx context.Context, evs []Event, ttl time.Duration) error {
	jsonVal, err := json.Marshal(evs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, eventsKey, string(jsonVal), ttl).Err()
}
