package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)

	// ListProducts retrieves product records.
	ListProducts(ctx context.Context, opts domain.ListOptions) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct stores a validated product.
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProduct merges the supplied fields into a stored product.
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)

	// DeleteProduct removes a product and returns it.
	DeleteProduct(ctx context.Context, id string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
