package pkg

import (
	"context"
	"fmt"

	"github.com/Ideal-Pranav/Career-finder/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis when REDIS_URL is set; callers treat a nil
// client as "caching disabled".
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}
