//go:build integration

package readstore_test

import (
	"context"
	"testing"
	"time"

	"orders-service/internal/infra"
	"orders-service/internal/infra/readstore"
	"orders-service/tests/common/containers"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type OrderReadStoreSuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	store     *readstore.OrderReadStore
}

func TestOrderReadStoreSuite(t *testing.T) {
	suite.Run(t, new(OrderReadStoreSuite))
}

func (s *OrderReadStoreSuite) SetupSuite() {
	ctx := context.Background()

	var err error
	s.container, s.pool, err = containers.StartPostgres(ctx)
	s.Require().NoError(err)

	s.store = readstore.NewOrderReadStore(s.pool)
}

func (s *OrderReadStoreSuite) TearDownSuite() {
	ctx := context.Background()

	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(ctx))
	}
}

type seededOrder struct {
	id         uuid.UUID
	userID     uuid.UUID
	productID  uuid.UUID
	title      string
	priceCents int64
	createdAt  time.Time
}

func (s *OrderReadStoreSuite) seedOrder(userID uuid.UUID, createdAt time.Time) seededOrder {
	s.T().Helper()
	ctx := context.Background()

	row := seededOrder{
		id:         uuid.New(),
		userID:     userID,
		productID:  uuid.New(),
		title:      gofakeit.ProductName(),
		priceCents: int64(gofakeit.Number(100, 100_000)),
		createdAt:  createdAt,
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO products (id, title, price_cents) VALUES ($1, $2, $3)`,
		row.productID, row.title, row.priceCents)
	s.Require().NoError(err)

	_, err = s.pool.Exec(ctx,
		`INSERT INTO orders (id, user_id, product_id, product_title, product_price_cents, status, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 'created', $6, $7, $7)`,
		row.id, row.userID, row.productID, row.title, row.priceCents, createdAt.Add(15*time.Minute), createdAt)
	s.Require().NoError(err)

	return row
}

func (s *OrderReadStoreSuite) TestFindByID() {
	ctx := context.Background()

	s.Run("success: returns the full order view", func() {
		seeded := s.seedOrder(uuid.New(), time.Now())

		view, err := s.store.FindByID(ctx, seeded.id)
		s.Require().NoError(err)
		s.Equal(seeded.id, view.ID)
		s.Equal(seeded.userID, view.UserID)
		s.Equal("created", view.Status)
		s.Equal(seeded.productID, view.ProductID)
		s.Equal(seeded.title, view.ProductTitle)
		s.Equal(seeded.priceCents, view.ProductPriceCents)
	})

	s.Run("error: unknown id yields NOT_FOUND", func() {
		_, err := s.store.FindByID(ctx, uuid.New())
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *OrderReadStoreSuite) TestFindByUserID() {
	ctx := context.Background()

	s.Run("success: newest orders first", func() {
		userID := uuid.New()
		base := time.Now().Add(-time.Hour)

		oldest := s.seedOrder(userID, base)
		middle := s.seedOrder(userID, base.Add(10*time.Minute))
		newest := s.seedOrder(userID, base.Add(20*time.Minute))
		s.seedOrder(uuid.New(), base) // another user's order stays out

		items, err := s.store.FindByUserID(ctx, userID)
		s.Require().NoError(err)
		s.Require().Len(items, 3)
		s.Equal(newest.id, items[0].ID)
		s.Equal(middle.id, items[1].ID)
		s.Equal(oldest.id, items[2].ID)
	})

	s.Run("success: empty slice for a user with no orders", func() {
		items, err := s.store.FindByUserID(ctx, uuid.New())
		s.Require().NoError(err)
		s.Empty(items)
	})
}
