package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by its ID.
	FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error)

	// ListSuppliers retrieves supplier records in their default order.
	ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// CreateSupplier persists a new supplier. A reused supplier ID yields apperrors.ErrDuplicate.
	CreateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)

	// UpdateSupplier replaces a stored supplier. A missing record yields apperrors.ErrNotFound.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier and returns the removed record. A supplier still referenced by orders yields apperrors.ErrConflict.
	DeleteSupplier(ctx context.Context, id string) (*domain.Supplier, error)
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
