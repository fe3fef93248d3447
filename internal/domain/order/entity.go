package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrEmptyUserID        = errors.New("user id cannot be empty")
	ErrExpirationNotSet   = errors.New("expiration timestamp must be set")
	ErrExpirationInPast   = errors.New("expiration timestamp cannot be in the past")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")
)

type Order struct {
	id        uuid.UUID
	userID    uuid.UUID
	product   ProductSnapshot
	status    Status
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewOrder(userID uuid.UUID, product ProductSnapshot, expiresAt, now time.Time) (*Order, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyUserID
	}
	if expiresAt.IsZero() {
		return nil, ErrExpirationNotSet
	}
	if !expiresAt.After(now) {
		return nil, ErrExpirationInPast
	}

	return &Order{
		id:        uuid.New(),
		userID:    userID,
		product:   product,
		status:    StatusCreated,
		expiresAt: expiresAt,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	product ProductSnapshot,
	status Status,
	expiresAt, createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:        id,
		userID:    userID,
		product:   product,
		status:    status,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reserves reports whether this order still claims its product at the
// given instant. Reservation is computed from status and timestamp
// jointly: an expired Created order releases its claim even though no
// status transition has been persisted yet, while a paid order holds
// its product indefinitely.
func (o *Order) Reserves(now time.Time) bool {
	if o.status == StatusCancelled {
		return false
	}
	if o.status.IsPaid() {
		return true
	}
	return o.expiresAt.After(now)
}

func (o *Order) HasExpired(now time.Time) bool {
	return !o.expiresAt.After(now)
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) UserID() uuid.UUID        { return o.userID }
func (o *Order) Product() ProductSnapshot { return o.product }
func (o *Order) Status() Status           { return o.status }
func (o *Order) ExpiresAt() time.Time     { return o.expiresAt }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
