package response

import (
	"time"

	"orders-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Status    string          `json:"status"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Product   ProductSnapshot `json:"product"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ProductSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Price int64     `json:"price"`
}

type OrderListResponse struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Product   ProductSnapshot `json:"product"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	resp.Product = ProductSnapshot{
		ID:    view.ProductID,
		Title: view.ProductTitle,
		Price: view.ProductPriceCents,
	}
	return &resp
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListResponse {
	var resp OrderListResponse
	_ = copier.Copy(&resp, item)
	resp.Product = ProductSnapshot{
		ID:    item.ProductID,
		Title: item.ProductTitle,
		Price: item.ProductPriceCents,
	}
	return &resp
}
