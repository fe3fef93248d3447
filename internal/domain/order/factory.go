package order

import (
	"time"

	"orders-service/internal/domain/product"
	"orders-service/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock            clock.Clock
	ExpirationWindow time.Duration
}

func NewFactory(clock clock.Clock, expirationWindow time.Duration) *Factory {
	return &Factory{
		Clock:            clock,
		ExpirationWindow: expirationWindow,
	}
}

// CreateOrder builds a new Created order claiming the given product.
// Pure construction: persistence is an explicit separate step.
func (f *Factory) CreateOrder(userID uuid.UUID, productEntity *product.Product) (*Order, error) {
	price, err := NewMoney(productEntity.PriceCents())
	if err != nil {
		return nil, err
	}

	snapshot, err := NewProductSnapshot(productEntity.ID(), productEntity.Title(), price)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return NewOrder(userID, snapshot, now.Add(f.ExpirationWindow), now)
}
