package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"branches-api/pkg/config"
	"branches-api/pkg/database/postgresql"
	"branches-api/pkg/database/redisdb"
	apperrors "branches-api/pkg/errors"
)

// NewBranchStorage открывает хранилище, выбранное STORAGE_DRIVER.
// Возвращаемая функция закрывает соединения.
func NewBranchStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (BranchRepositoryInterface, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Postgres.Migrate {
			if err := postgresql.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return NewBranchRepository(pool, logger), pool.Close, nil

	case config.StorageDriverRedis:
		client, err := redisdb.Connect(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Ошибка закрытия Redis", zap.Error(err))
			}
		}
		return NewRedisBranchRepository(client, cfg.Redis.KeyPrefix, logger), closeFn, nil

	case config.StorageDriverMemory:
		logger.Warn("Используется хранилище в памяти, данные не переживут перезапуск")
		return NewMemoryBranchRepository(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStorage, cfg.Storage.Driver)
}
