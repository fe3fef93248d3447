package order

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// ProductSnapshot captures the ordered product as it was at creation time.
// Later catalog updates must not change what the order was priced at.
type ProductSnapshot struct {
	id         uuid.UUID
	title      string
	priceCents Money
}

func NewProductSnapshot(id uuid.UUID, title string, price Money) (ProductSnapshot, error) {
	if id == uuid.Nil {
		return ProductSnapshot{}, errors.New("product id cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return ProductSnapshot{}, errors.New("product title cannot be empty")
	}
	return ProductSnapshot{
		id:         id,
		title:      strings.TrimSpace(title),
		priceCents: price,
	}, nil
}

func (s ProductSnapshot) ID() uuid.UUID {
	return s.id
}

func (s ProductSnapshot) Title() string {
	return s.title
}

func (s ProductSnapshot) Price() Money {
	return s.priceCents
}
