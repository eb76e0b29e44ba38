package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"branches-api/internal/entities"
)

const (
	branchDocKey   = "%s:doc:%s"
	branchIndexKey = "%s:ids"
)

// RedisBranchRepository - каждый филиал хранится JSON-документом,
// множество <prefix>:ids служит индексом для FindAll.
type RedisBranchRepository struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisBranchRepository(client *redis.Client, prefix string, logger *zap.Logger) BranchRepositoryInterface {
	return &RedisBranchRepository{client: client, prefix: prefix, logger: logger}
}

func (r *RedisBranchRepository) docKey(id string) string {
	return fmt.Sprintf(branchDocKey, r.prefix, id)
}

func (r *RedisBranchRepository) indexKey() string {
	return fmt.Sprintf(branchIndexKey, r.prefix)
}

func (r *RedisBranchRepository) FindAll(ctx context.Context) ([]entities.Branch, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, err
	}
	branches := make([]entities.Branch, 0, len(ids))
	if len(ids) == 0 {
		return branches, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.docKey(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Индекс ссылается на удалённый документ - пропускаем.
			r.logger.Warn("Документ филиала отсутствует", zap.String("key", keys[i]))
			continue
		}
		branch, err := decodeBranch([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения документа %s: %w", keys[i], err)
		}
		branches = append(branches, *branch)
	}

	sort.SliceStable(branches, func(i, j int) bool {
		if branches[i].CreationDate.Equal(branches[j].CreationDate) {
			return branches[i].ID < branches[j].ID
		}
		return branches[i].CreationDate.Before(branches[j].CreationDate)
	})
	return branches, nil
}

func (r *RedisBranchRepository) FindByID(ctx context.Context, id string) (*entities.Branch, bool, error) {
	raw, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	branch, err := decodeBranch(raw)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения документа филиала %s: %w", id, err)
	}
	return branch, true, nil
}

// Save перезаписывает документ целиком (SET) и добавляет ID в индекс в одной транзакции MULTI.
func (r *RedisBranchRepository) Save(ctx context.Context, branch *entities.Branch) (*entities.Branch, error) {
	saved := branch.Clone()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	data, err := encodeBranch(saved)
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.docKey(saved.ID), data, 0)
		pipe.SAdd(ctx, r.indexKey(), saved.ID)
		return nil
	})
	if err != nil {
		r.logger.Error("Ошибка сохранения филиала в Redis", zap.String("branch_id", saved.ID), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *RedisBranchRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
