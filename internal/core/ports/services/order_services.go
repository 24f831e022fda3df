package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// OrderReaderSvc defines read operations for order data
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order by ID.
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)

	// ListOrders retrieves order records.
	ListOrders(ctx context.Context, opts domain.ListOptions) ([]domain.Order, error)

	// SupplierSummaries looks up the suppliers referenced by orders, keyed by
	// supplier primary ID. Suppliers that cannot be loaded are left out.
	SupplierSummaries(ctx context.Context, orders []domain.Order) map[string]domain.SupplierSummary
}

// OrderWriterSvc defines write operations for order data
type OrderWriterSvc interface {
	// CreateOrder stores a validated order.
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)

	// UpdateOrder merges the supplied fields into a stored order.
	UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)

	// DeleteOrder removes an order and returns it.
	DeleteOrder(ctx context.Context, id string) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
