package commands

import (
	"context"
	"log/slog"
	"time"

	domorder "orders-service/internal/domain/order"
	"orders-service/internal/domain/product"
	"orders-service/internal/infra"
	"orders-service/internal/pkg/clock"
	"orders-service/internal/pkg/errs"
	"orders-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrProductReserved         = errs.New("product is already reserved")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrEventPublishFailed      = errs.New("event publish failed")
)

type CreateOrderResult struct {
	Order *queries.OrderView
}

// OrderRepository persists orders. Create runs the reservation probe and
// the insert in one transaction after locking the product row, so two
// concurrent creates for the same product serialize and the loser gets
// KindConflict.
type OrderRepository interface {
	Create(ctx context.Context, o *domorder.Order, now time.Time) (uuid.UUID, error)
	IsProductReserved(ctx context.Context, productID uuid.UUID, now time.Time) (bool, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

// EventPublisher hands a structured notification to the messaging
// transport. Delivery guarantees belong to the transport; the contract
// here is one publish per successfully persisted order, never before
// persistence.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event domorder.CreatedEvent) error
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, userID, productID uuid.UUID) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	orderRepo    OrderRepository
	productStore ProductReadStore
	publisher    EventPublisher
	orderFactory *domorder.Factory
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	productStore ProductReadStore,
	publisher EventPublisher,
	orderFactory *domorder.Factory,
	orderQueries queries.OrderQueries,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:    orderRepo,
		productStore: productStore,
		publisher:    publisher,
		orderFactory: orderFactory,
		orderQueries: orderQueries,
		clock:        clock,
	}
}

func (u *orderCommandsImpl) CreateOrder(ctx context.Context, userID, productID uuid.UUID) (*CreateOrderResult, error) {
	productEntity, err := u.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Fast-path check. The authoritative probe runs again inside the
	// insert transaction; this one only rejects obvious conflicts
	// without taking the product lock.
	reserved, err := u.orderRepo.IsProductReserved(ctx, productID, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if reserved {
		return nil, ErrProductReserved
	}

	orderEntity, err := u.orderFactory.CreateOrder(userID, productEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	orderID, err := u.orderRepo.Create(ctx, orderEntity, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrProductReserved
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Publish strictly after the commit. A failure here leaves the
	// persisted order without its event; reconciliation is owned by an
	// external re-publisher, not this workflow.
	event := domorder.NewCreatedEvent(orderEntity)
	if err := u.publisher.PublishOrderCreated(ctx, event); err != nil {
		slog.Error("order created event publish failed", "order_id", orderID, "error", err.Error())
		return nil, errs.Mark(err, ErrEventPublishFailed)
	}

	// Read-after-write: return the persisted view.
	orderView, err := u.orderQueries.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateOrderResult{Order: orderView}, nil
}

func (u *orderCommandsImpl) findProduct(ctx context.Context, productID uuid.UUID) (*product.Product, error) {
	productEntity, err := u.productStore.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return productEntity, nil
}
