package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/google/uuid"
)

type promotionService struct {
	BaseService
	promotionRepo portsrepo.PromotionRepositoryFacade
}

// NewPromotionService creates a new promotion service.
func NewPromotionService(repo portsrepo.PromotionRepositoryFacade, opts ...ServiceOption) portssvc.PromotionSvcFacade {
	svc := &promotionService{promotionRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.PromotionSvcFacade = (*promotionService)(nil)

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *promotionService) CreatePromotion(ctx context.Context, promotion domain.Promotion) (*domain.Promotion, error) {
	promotion.ID = uuid.NewString()

	created, err := s.promotionRepo.CreatePromotion(ctx, promotion)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create promotion", slog.String("promotion_code", promotion.PromotionCode))
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	s.LogInfo(ctx, "Promotion created", slog.String("promotion_code", created.PromotionCode))
	return created, nil
}

func (s *promotionService) GetPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	code = normalizeCode(code)
	promotion, err := s.promotionRepo.FindPromotionByCode(ctx, code)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get promotion", slog.String("promotion_code", code))
		return nil, fmt.Errorf("failed to get promotion %s: %w", code, err)
	}
	return promotion, nil
}

func (s *promotionService) ListPromotions(ctx context.Context, opts domain.ListOptions) ([]domain.Promotion, error) {
	promotions, err := s.promotionRepo.ListPromotions(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list promotions")
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	if promotions == nil {
		return []domain.Promotion{}, nil
	}
	return promotions, nil
}

func (s *promotionService) UpdatePromotion(ctx context.Context, code string, patch domain.PromotionPatch) (*domain.Promotion, error) {
	code = normalizeCode(code)
	current, err := s.promotionRepo.FindPromotionByCode(ctx, code)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load promotion for update", slog.String("promotion_code", code))
		return nil, fmt.Errorf("failed to get promotion %s: %w", code, err)
	}

	patch.ApplyTo(current)
	if err := validation.CheckPromotionWindow(*current); err != nil {
		s.logFailure(ctx, err, "Rejected promotion update", slog.String("promotion_code", code))
		return nil, err
	}

	updated, err := s.promotionRepo.UpdatePromotion(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update promotion", slog.String("promotion_code", code))
		return nil, fmt.Errorf("failed to update promotion %s: %w", code, err)
	}

	s.LogInfo(ctx, "Promotion updated", slog.String("promotion_code", updated.PromotionCode))
	return updated, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	code = normalizeCode(code)
	current, err := s.promotionRepo.FindPromotionByCode(ctx, code)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load promotion for delete", slog.String("promotion_code", code))
		return nil, fmt.Errorf("failed to get promotion %s: %w", code, err)
	}

	deleted, err := s.promotionRepo.DeletePromotion(ctx, current.ID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete promotion", slog.String("promotion_code", code))
		return nil, fmt.Errorf("failed to delete promotion %s: %w", code, err)
	}

	s.LogInfo(ctx, "Promotion deleted", slog.String("promotion_code", code))
	return deleted, nil
}
