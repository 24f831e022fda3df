package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// SupplierReaderSvc defines read operations for supplier data
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a supplier by ID.
	GetSupplierByID(ctx context.Context, id string) (*domain.Supplier, error)

	// ListSuppliers retrieves supplier records.
	ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data
type SupplierWriterSvc interface {
	// CreateSupplier stores a validated supplier.
	CreateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)

	// UpdateSupplier merges the supplied fields into a stored supplier.
	UpdateSupplier(ctx context.Context, id string, patch domain.SupplierPatch) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier and returns it.
	DeleteSupplier(ctx context.Context, id string) (*domain.Supplier, error)
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
