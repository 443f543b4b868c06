package characters

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Clock  func() time.Time // Optional, defaults to time.Now
}

// NewRedisRepository creates a Redis-backed character repository from config
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  clock,
	}
}

// NewRedis creates a new Redis-backed character repository with defaults
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
	})
}
