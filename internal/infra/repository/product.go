package repository

import (
	"context"
	"errors"
	"time"

	"orders-service/internal/domain/product"
	"orders-service/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getProductByIDSQL = `
SELECT id, title, price_cents, created_at, updated_at
FROM products
WHERE id = $1`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var (
		productID  uuid.UUID
		title      string
		priceCents int64
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := r.pool.QueryRow(ctx, getProductByIDSQL, id).Scan(&productID, &title, &priceCents, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	return product.ReconstructProduct(productID, title, priceCents, createdAt, updatedAt), nil
}
