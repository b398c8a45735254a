package cache

import (
	"context"
	"fmt"
	"time"

	"auth-platform/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the redis client backing the pending-signup store and
// verifies connectivity.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
