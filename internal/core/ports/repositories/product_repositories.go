package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts retrieves product records in their default order.
	ListProducts(ctx context.Context, opts domain.ListOptions) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// CreateProduct persists a new product. A reused barcode yields apperrors.ErrDuplicate.
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProduct replaces a stored product. A missing record yields apperrors.ErrNotFound.
	UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// DeleteProduct removes a product and returns the removed record.
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
