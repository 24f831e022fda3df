package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves an order by its ID.
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)

	// ListOrders retrieves order records in their default order.
	ListOrders(ctx context.Context, opts domain.ListOptions) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// CreateOrder persists a new order. A reused order number yields apperrors.ErrDuplicate.
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)

	// UpdateOrder replaces a stored order. A missing record yields apperrors.ErrNotFound.
	UpdateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)

	// DeleteOrder removes an order and returns the removed record.
	DeleteOrder(ctx context.Context, id string) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
