package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domorder "orders-service/internal/domain/order"
	"orders-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reservedCondition matches orders that still claim their product:
// not cancelled, and either paid or not yet expired. An expired order
// in Created status releases its claim before any sweep updates it.
const reservedCondition = `status <> 'cancelled' AND (status = 'complete' OR expires_at > $2)`

const insertOrderSQL = `
INSERT INTO orders (id, user_id, product_id, product_title, product_price_cents, status, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const probeReservationSQL = `
SELECT EXISTS (
	SELECT 1 FROM orders
	WHERE product_id = $1 AND ` + reservedCondition + `
)`

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order after re-checking the reservation invariant
// under a product row lock. Returns KindConflict when another order
// still reserves the product, KindNotFound when the product row is gone.
func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order, now time.Time) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// Lock the product row so concurrent creates for the same product
	// serialize on the probe below.
	var lockedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 FOR UPDATE`, o.Product().ID()).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to lock product", err)
	}

	var reserved bool
	if err := tx.QueryRow(ctx, probeReservationSQL, o.Product().ID(), now).Scan(&reserved); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to probe reservation", err)
	}
	if reserved {
		return uuid.Nil, infra.WrapRepoErr("product is already reserved", nil, infra.KindConflict)
	}

	var orderID uuid.UUID
	err = tx.QueryRow(ctx, insertOrderSQL,
		o.ID(),
		o.UserID(),
		o.Product().ID(),
		o.Product().Title(),
		o.Product().Price().Cents(),
		o.Status().String(),
		o.ExpiresAt(),
	).Scan(&orderID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit transaction", err)
	}

	return orderID, nil
}

// IsProductReserved runs the reservation probe without locking; callers
// needing the race-free answer go through Create.
func (r *OrderRepository) IsProductReserved(ctx context.Context, productID uuid.UUID, now time.Time) (bool, error) {
	var reserved bool
	if err := r.pool.QueryRow(ctx, probeReservationSQL, productID, now).Scan(&reserved); err != nil {
		return false, infra.WrapRepoErr("failed to probe reservation", err)
	}
	return reserved, nil
}
