package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// PromotionReaderSvc defines read operations for promotions. Promotions are
// addressed by promotion code rather than by ID.
type PromotionReaderSvc interface {
	GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error)
	ListPromotions(ctx context.Context, opts domain.ListOptions) ([]domain.Promotion, error)
}

// PromotionWriterSvc defines write operations for promotions
type PromotionWriterSvc interface {
	CreatePromotion(ctx context.Context, promotion domain.Promotion) (*domain.Promotion, error)

	// UpdatePromotion merges the patch and re-checks the date window on the merged record.
	UpdatePromotion(ctx context.Context, code string, patch domain.PromotionPatch) (*domain.Promotion, error)

	DeletePromotion(ctx context.Context, code string) (*domain.Promotion, error)
}

// PromotionSvcFacade combines all promotion-related service interfaces
type PromotionSvcFacade interface {
	PromotionReaderSvc
	PromotionWriterSvc
}
