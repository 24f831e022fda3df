package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// PromotionReader defines read operations for promotion data
type PromotionReader interface {
	// FindPromotionByID retrieves a promotion by its ID.
	FindPromotionByID(ctx context.Context, id string) (*domain.Promotion, error)

	// FindPromotionByCode retrieves a promotion by its promotion code, ignoring case.
	FindPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error)

	// ListPromotions retrieves promotion records in their default order.
	ListPromotions(ctx context.Context, opts domain.ListOptions) ([]domain.Promotion, error)
}

// PromotionWriter defines write operations for promotion data
type PromotionWriter interface {
	// CreatePromotion persists a new promotion. A reused promotion code yields apperrors.ErrDuplicate.
	CreatePromotion(ctx context.Context, promotion domain.Promotion) (*domain.Promotion, error)

	// UpdatePromotion replaces a stored promotion. A missing record yields apperrors.ErrNotFound.
	UpdatePromotion(ctx context.Context, promotion domain.Promotion) (*domain.Promotion, error)

	// DeletePromotion removes a promotion and returns the removed record.
	DeletePromotion(ctx context.Context, id string) (*domain.Promotion, error)
}

// PromotionRepositoryFacade combines all promotion-related repository interfaces
type PromotionRepositoryFacade interface {
	PromotionReader
	PromotionWriter
}
