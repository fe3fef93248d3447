package queries

import (
	"context"
	"time"

	"orders-service/internal/infra"
	"orders-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

// Read models (DTO for read side)
type OrderView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Status            string    `json:"status"`
	ExpiresAt         time.Time `json:"expires_at"`
	ProductID         uuid.UUID `json:"product_id"`
	ProductTitle      string    `json:"product_title"`
	ProductPriceCents int64     `json:"product_price_cents"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type OrderListItem struct {
	ID                uuid.UUID `json:"id"`
	Status            string    `json:"status"`
	ExpiresAt         time.Time `json:"expires_at"`
	ProductID         uuid.UUID `json:"product_id"`
	ProductTitle      string    `json:"product_title"`
	ProductPriceCents int64     `json:"product_price_cents"`
	CreatedAt         time.Time `json:"created_at"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// Orders are visible to their owner only; absence and denial look alike.
	if view.UserID != actor {
		return nil, ErrOrderNotFound
	}

	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}
