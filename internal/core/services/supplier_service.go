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

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade, opts ...ServiceOption) portssvc.SupplierSvcFacade {
	svc := &supplierService{supplierRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	supplier.ID = uuid.NewString()

	created, err := s.supplierRepo.CreateSupplier(ctx, supplier)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create supplier", slog.String("supplier_code", supplier.SupplierID))
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", created.ID))
	return created, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get supplier", slog.String("supplier_id", id))
		return nil, fmt.Errorf("failed to get supplier %s: %w", id, err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]domain.Supplier, error) {
	records, err := s.supplierRepo.ListSuppliers(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier records")
		return nil, fmt.Errorf("failed to list supplier records: %w", err)
	}
	if records == nil {
		return []domain.Supplier{}, nil
	}
	return records, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id string, patch domain.SupplierPatch) (*domain.Supplier, error) {
	current, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load supplier for update", slog.String("supplier_id", id))
		return nil, fmt.Errorf("failed to get supplier %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.supplierRepo.UpdateSupplier(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update supplier", slog.String("supplier_id", id))
		return nil, fmt.Errorf("failed to update supplier %s: %w", id, err)
	}

	s.LogInfo(ctx, "Supplier updated", slog.String("supplier_id", id))
	return updated, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	deleted, err := s.supplierRepo.DeleteSupplier(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete supplier", slog.String("supplier_id", id))
		return nil, fmt.Errorf("failed to delete supplier %s: %w", id, err)
	}

	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", id))
	return deleted, nil
}
