package database

import (
	"context"
	"fmt"

	"reforma_xpto/internal/infrastructure/logging"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client to addr and checks it answers PING.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       0,
		PoolSize: 20,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	logging.Default().WithField("addr", addr).Info("[storage][redis] connected")
	return rdb, nil
}
