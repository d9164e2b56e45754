package store

import (
	"context"
	"fmt"
	"time"

	"heartbank/internal/utils"
	"heartbank/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const depositTableName = "heartbank.deposits"

var depositColumns = utils.StructTagValues(types.Deposit{})

type DepositRepository struct {
	pool *pgxpool.Pool
}

func NewDepositRepository(pool *pgxpool.Pool) *DepositRepository {
	return &DepositRepository{pool: pool}
}

// Create validates the deposit, then assigns its ID and CreatedAt before inserting.
func (r *DepositRepository) Create(ctx context.Context, deposit *types.Deposit) error {
	if err := deposit.Validate(); err != nil {
		return err
	}

	deposit.ID = utils.NanoID()
	deposit.CreatedAt = time.Now().UTC()

	query, args, err := psql().
		Insert(depositTableName).
		SetMap(utils.StructToMap(deposit)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create deposit query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create deposit: %w", err)
	}

	return nil
}

func (r *DepositRepository) Deposit(ctx context.Context, userID, depositID string) (*types.Deposit, error) {
	query, args, err := psql().
		Select(depositColumns...).
		From(depositTableName).
		Where(sq.Eq{"id": depositID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate deposit query: %w", err)
	}

	var deposit types.Deposit
	err = pgxscan.Get(ctx, r.pool, &deposit, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrDepositNotFound
		}
		return nil, fmt.Errorf("failed to fetch deposit: %w", err)
	}

	return &deposit, nil
}

func (r *DepositRepository) DepositsByUser(ctx context.Context, userID string, filter types.DepositFilter) ([]*types.Deposit, error) {
	query, args, err := depositsByUserQuery(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to generate deposits query: %w", err)
	}

	deposits := make([]*types.Deposit, 0)
	err = pgxscan.Select(ctx, r.pool, &deposits, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deposits: %w", err)
	}

	return deposits, nil
}

// AllDepositsByUser returns every deposit of the user, oldest first.
func (r *DepositRepository) AllDepositsByUser(ctx context.Context, userID string) ([]*types.Deposit, error) {
	query, args, err := psql().
		Select(depositColumns...).
		From(depositTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate all deposits query: %w", err)
	}

	deposits := make([]*types.Deposit, 0)
	err = pgxscan.Select(ctx, r.pool, &deposits, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all deposits: %w", err)
	}

	return deposits, nil
}

func depositsByUserQuery(userID string, filter types.DepositFilter) (string, []any, error) {
	filter = filter.Normalize()

	builder := psql().
		Select(depositColumns...).
		From(depositTableName).
		Where(sq.Eq{"user_id": userID})

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	return builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit).
		ToSql()
}

func (r *DepositRepository) Delete(ctx context.Context, userID, depositID string) error {
	query, args, err := psql().
		Delete(depositTableName).
		Where(sq.Eq{"id": depositID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete deposit query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrDepositNotFound
	}

	return nil
}

func (r *DepositRepository) CountByCategory(ctx context.Context, userID string) ([]*types.CategoryCount, error) {
	query, args, err := psql().
		Select("category", "COUNT(*) AS count").
		From(depositTableName).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("category").
		OrderBy("count DESC", "category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate category count query: %w", err)
	}

	counts := make([]*types.CategoryCount, 0)
	err = pgxscan.Select(ctx, r.pool, &counts, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to count deposits by category")
	}

	return counts, nil
}
