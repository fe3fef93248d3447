package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductTitle   = errors.New("product title cannot be empty")
	ErrNegativePrice       = errors.New("product price cannot be negative")
	ErrProductTitleTooLong = errors.New("product title is too long (max 255 characters)")
)

const (
	MaxProductTitleLength = 255
)

// Product is read-only from this service's perspective; the catalog
// service owns its lifecycle.
type Product struct {
	id         uuid.UUID
	title      string
	priceCents int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewProduct(id uuid.UUID, title string, priceCents int64) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:         id,
		title:      strings.TrimSpace(title),
		priceCents: priceCents,
	}, nil
}

func ReconstructProduct(id uuid.UUID, title string, priceCents int64, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:         id,
		title:      title,
		priceCents: priceCents,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Title() string        { return p.title }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyProductTitle
	}
	if len(trimmed) > MaxProductTitleLength {
		return ErrProductTitleTooLong
	}
	return nil
}
