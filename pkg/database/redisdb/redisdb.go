package redisdb

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"branches-api/pkg/config"
)

func Connect(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("не удалось подключиться к Redis %s: %w", cfg.Address, err)
	}

	logger.Info("✅ Подключено к Redis", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
