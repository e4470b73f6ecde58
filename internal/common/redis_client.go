package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flightops360/hangar/internal/logging"
)

// NewRedisClient dials Redis and pings it once. A failed ping is logged but
// the client is still returned; the pool reconnects on demand.
func NewRedisClient(host string, port int, password string, db int) *redis.Client {
	addr := fmt.Sprintf("%s:%d", host, port)
	logging.Info("initializing redis client", "addr", addr, "db", db)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("failed to ping redis", "addr", addr, "error", err)
		return client
	}

	logging.Info("connected to redis", "addr", addr)
	return client
}
