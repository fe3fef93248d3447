//go:build unit || e2e || integration

package builder

import (
	"time"

	domorder "orders-service/internal/domain/order"
	"orders-service/internal/domain/product"
	reqdto "orders-service/internal/handler/dto/request"
	"orders-service/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID            uuid.UUID
	ProductID         uuid.UUID
	ProductTitle      string
	ProductPriceCents int64
	Status            string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		UserID:            uuid.New(),
		ProductID:         uuid.New(),
		ProductTitle:      gofakeit.ProductName(),
		ProductPriceCents: 1000,
		Status:            "created",
		ExpiresAt:         now.Add(15 * time.Minute),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildProduct() *product.Product {
	return product.ReconstructProduct(b.ProductID, b.ProductTitle, b.ProductPriceCents, b.CreatedAt, b.UpdatedAt)
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	price, err := domorder.NewMoney(b.ProductPriceCents)
	if err != nil {
		return nil, err
	}
	snapshot, err := domorder.NewProductSnapshot(b.ProductID, b.ProductTitle, price)
	if err != nil {
		return nil, err
	}
	return domorder.NewOrder(b.UserID, snapshot, b.ExpiresAt, b.CreatedAt)
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		ProductID: b.ProductID,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:                uuid.New(),
		UserID:            b.UserID,
		Status:            b.Status,
		ExpiresAt:         b.ExpiresAt,
		ProductID:         b.ProductID,
		ProductTitle:      b.ProductTitle,
		ProductPriceCents: b.ProductPriceCents,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:                uuid.New(),
		Status:            b.Status,
		ExpiresAt:         b.ExpiresAt,
		ProductID:         b.ProductID,
		ProductTitle:      b.ProductTitle,
		ProductPriceCents: b.ProductPriceCents,
		CreatedAt:         b.CreatedAt,
	}
}
