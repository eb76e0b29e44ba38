package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"branches-api/internal/entities"
)

const branchTable = "branches"

var branchColumns = []string{
	"id", "name", "email_address", "phone_number", "state",
	"creation_date", "last_modified_date", "branch_holidays",
}

// BranchRepositoryInterface - хранилище документов Branch по ID.
// Отсутствие записи в FindByID не ошибка: found == false.
// Save вставляет запись без ID (назначая новый) или целиком заменяет существующую.
type BranchRepositoryInterface interface {
	FindAll(ctx context.Context) ([]entities.Branch, error)
	FindByID(ctx context.Context, id string) (*entities.Branch, bool, error)
	Save(ctx context.Context, branch *entities.Branch) (*entities.Branch, error)
	Ping(ctx context.Context) error
}

// BranchRepository хранит филиалы в Postgres, праздники - в JSONB-колонке.
type BranchRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBranchRepository(storage *pgxpool.Pool, logger *zap.Logger) BranchRepositoryInterface {
	return &BranchRepository{storage: storage, logger: logger}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func scanBranch(row pgx.Row) (*entities.Branch, error) {
	var b entities.Branch
	var holidays []byte

	err := row.Scan(
		&b.ID, &b.Name, &b.EmailAddress, &b.PhoneNumber, &b.State,
		&b.CreationDate, &b.LastModifiedDate, &holidays,
	)
	if err != nil {
		return nil, err
	}

	b.CreationDate = b.CreationDate.UTC()
	b.LastModifiedDate = b.LastModifiedDate.UTC()
	if b.BranchHolidays, err = decodeHolidays(holidays); err != nil {
		return nil, fmt.Errorf("ошибка чтения праздников филиала %s: %w", b.ID, err)
	}
	return &b, nil
}

func (r *BranchRepository) FindAll(ctx context.Context) ([]entities.Branch, error) {
	query, args, err := psql().Select(branchColumns...).
		From(branchTable).
		OrderBy("creation_date", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]entities.Branch, 0)
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, *branch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BranchRepository) FindByID(ctx context.Context, id string) (*entities.Branch, bool, error) {
	query, args, err := psql().Select(branchColumns...).
		From(branchTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	branch, err := scanBranch(r.storage.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return branch, true, nil
}

// Save - upsert всего документа, без проверки версии (последняя запись побеждает).
func (r *BranchRepository) Save(ctx context.Context, branch *entities.Branch) (*entities.Branch, error) {
	saved := branch.Clone()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	holidays, err := encodeHolidays(saved.BranchHolidays)
	if err != nil {
		return nil, err
	}

	query, args, err := psql().Insert(branchTable).
		Columns(branchColumns...).
		Values(
			saved.ID, saved.Name, saved.EmailAddress, saved.PhoneNumber, saved.State,
			saved.CreationDate, saved.LastModifiedDate, holidays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email_address = EXCLUDED.email_address,
			phone_number = EXCLUDED.phone_number,
			state = EXCLUDED.state,
			creation_date = EXCLUDED.creation_date,
			last_modified_date = EXCLUDED.last_modified_date,
			branch_holidays = EXCLUDED.branch_holidays`).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Ошибка сохранения филиала", zap.String("branch_id", saved.ID), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *BranchRepository) Ping(ctx context.Context) error {
	return r.storage.Ping(ctx)
}
