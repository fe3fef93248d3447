package request

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}
