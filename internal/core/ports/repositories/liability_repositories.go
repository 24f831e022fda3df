package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// LiabilityReader defines read operations for liability data
type LiabilityReader interface {
	// FindLiabilityByID retrieves a liability by its ID.
	FindLiabilityByID(ctx context.Context, id string) (*domain.Liability, error)

	// ListLiabilities retrieves liability records in their default order.
	ListLiabilities(ctx context.Context, opts domain.ListOptions) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liability data
type LiabilityWriter interface {
	// CreateLiability persists a new liability. The store assigns timestamps.
	CreateLiability(ctx context.Context, liability domain.Liability) (*domain.Liability, error)

	// UpdateLiability replaces a stored liability. A missing record yields apperrors.ErrNotFound.
	UpdateLiability(ctx context.Context, liability domain.Liability) (*domain.Liability, error)

	// DeleteLiability removes a liability and returns the removed record.
	DeleteLiability(ctx context.Context, id string) (*domain.Liability, error)
}

// LiabilityRepositoryFacade combines all liability-related repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
}
