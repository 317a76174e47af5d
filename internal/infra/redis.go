package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client backing the job queues and fails fast when the
// broker is unreachable: the alert pipeline cannot run without it.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
