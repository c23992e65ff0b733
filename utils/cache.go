package utils

import (
	"context"
	"time"

	"eventconnect/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ConnectRedis builds the shared Redis client and verifies the connection.
// A nil client with an error means the caller should fall back to the
// in-process cache.
func ConnectRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unreachable", zap.String("addr", config.AppConfig.RedisAddr), zap.Error(err))
		return nil, err
	}
	return client, nil
}
