package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// LiabilityReaderSvc defines read operations for liability data
type LiabilityReaderSvc interface {
	// GetLiabilityByID retrieves a liability by ID.
	GetLiabilityByID(ctx context.Context, id string) (*domain.Liability, error)

	// ListLiabilities retrieves liability records.
	ListLiabilities(ctx context.Context, opts domain.ListOptions) ([]domain.Liability, error)
}

// LiabilityWriterSvc defines write operations for liability data
type LiabilityWriterSvc interface {
	// CreateLiability stores a validated liability.
	CreateLiability(ctx context.Context, liability domain.Liability) (*domain.Liability, error)

	// UpdateLiability merges the supplied fields into a stored liability.
	UpdateLiability(ctx context.Context, id string, patch domain.LiabilityPatch) (*domain.Liability, error)

	// DeleteLiability removes a liability and returns it.
	DeleteLiability(ctx context.Context, id string) (*domain.Liability, error)
}

// LiabilitySvcFacade combines all liability-related service interfaces
type LiabilitySvcFacade interface {
	LiabilityReaderSvc
	LiabilityWriterSvc
}
