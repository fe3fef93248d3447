package order

import (
	"time"

	"github.com/google/uuid"
)

const EventOrderCreated = "OrderCreated"

// CreatedEvent is the wire payload announcing a persisted order.
// expiresAt travels as an absolute ISO-8601 timestamp string so that
// consumers in other services need no shared time-zone assumptions.
type CreatedEvent struct {
	OrderID   uuid.UUID           `json:"orderId"`
	Status    string              `json:"status"`
	UserID    uuid.UUID           `json:"userId"`
	ExpiresAt string              `json:"expiresAt"`
	Product   CreatedEventProduct `json:"product"`
}

type CreatedEventProduct struct {
	ID    uuid.UUID `json:"id"`
	Price int64     `json:"price"`
}

func NewCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		OrderID:   o.ID(),
		Status:    o.Status().String(),
		UserID:    o.UserID(),
		ExpiresAt: o.ExpiresAt().UTC().Format(time.RFC3339),
		Product: CreatedEventProduct{
			ID:    o.Product().ID(),
			Price: o.Product().Price().Cents(),
		},
	}
}
