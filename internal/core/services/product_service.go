package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(repo portsrepo.ProductRepositoryFacade, opts ...ServiceOption) portssvc.ProductSvcFacade {
	svc := &productService{productRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = uuid.NewString()

	created, err := s.productRepo.CreateProduct(ctx, p)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create product", slog.String("barcode", p.Barcode))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", created.ID))
	return created, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get product", slog.String("product_id", id))
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, opts domain.ListOptions) ([]domain.Product, error) {
	records, err := s.productRepo.ListProducts(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list product records")
		return nil, fmt.Errorf("failed to list product records: %w", err)
	}
	if records == nil {
		return []domain.Product{}, nil
	}
	return records, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	current, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load product for update", slog.String("product_id", id))
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.productRepo.UpdateProduct(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update product", slog.String("product_id", id))
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", id))
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	deleted, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete product", slog.String("product_id", id))
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}

	s.LogInfo(ctx, "Product deleted", slog.String("product_id", id))
	return deleted, nil
}
