package dto

import (
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PromotionResponse is a promotion with its discounted price and length in days.
type PromotionResponse struct {
	domain.Promotion
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	DurationDays    int             `json:"durationDays"`
}

// ToPromotionResponse converts a domain.Promotion to PromotionResponse DTO
func ToPromotionResponse(p *domain.Promotion) PromotionResponse {
	return PromotionResponse{
		Promotion:       *p,
		DiscountedPrice: p.DiscountedPrice(),
		DurationDays:    p.DurationDays(),
	}
}

// ToListPromotionResponse converts a slice of domain.Promotion to PromotionResponse DTOs
func ToListPromotionResponse(promotions []domain.Promotion) []PromotionResponse {
	return MapList(promotions, ToPromotionResponse)
}
