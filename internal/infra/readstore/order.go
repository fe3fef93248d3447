package readstore

import (
	"context"
	"errors"

	"orders-service/internal/infra"
	"orders-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
)

const getOrderByIDSQL = `
SELECT id, user_id, status, expires_at, product_id, product_title, product_price_cents, created_at, updated_at
FROM orders
WHERE id = $1`

const getOrdersByUserIDSQL = `
SELECT id, status, expires_at, product_id, product_title, product_price_cents, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView

	err := r.pool.QueryRow(ctx, getOrderByIDSQL, id).Scan(
		&view.ID,
		&view.UserID,
		&view.Status,
		&view.ExpiresAt,
		&view.ProductID,
		&view.ProductTitle,
		&view.ProductPriceCents,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.pool.Query(ctx, getOrdersByUserIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find orders by user ID", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.OrderListItem, error) {
		var item queries.OrderListItem
		err := row.Scan(
			&item.ID,
			&item.Status,
			&item.ExpiresAt,
			&item.ProductID,
			&item.ProductTitle,
			&item.ProductPriceCents,
			&item.CreatedAt,
		)
		return item, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan orders by user ID", err)
	}

	return lo.Map(items, func(item queries.OrderListItem, _ int) *queries.OrderListItem {
		return &item
	}), nil
}
