package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MediaType is the channel a promotion runs on.
type MediaType string

// Audience is a customer segment targeted by a promotion.
type Audience string

// PromotionStatus is the lifecycle state of a promotion.
type PromotionStatus string

const (
	PromotionDraft   PromotionStatus = "draft"
	PromotionActive  PromotionStatus = "active"
	PromotionPaused  PromotionStatus = "paused"
	PromotionExpired PromotionStatus = "expired"
)

// Promotion is a time-boxed discount on an item. It is addressed by PromotionCode.
type Promotion struct {
	ID             string          `json:"id"`
	PromotionCode  string          `json:"promotionCode" validate:"max=20"`
	ItemCode       string          `json:"itemCode" validate:"max=50"`
	ItemName       string          `json:"itemName" validate:"max=100"`
	MediaType      MediaType       `json:"mediaType" validate:"oneof=social email print web tv radio"`
	TargetAudience []Audience      `json:"targetAudience" validate:"min=1,dive,oneof=new existing vip all"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	OriginalPrice  decimal.Decimal `json:"originalPrice" validate:"dgte=0"`
	Discount       decimal.Decimal `json:"discount" validate:"dgte=0,dlte=100"`
	Quantity       int             `json:"quantity" validate:"gte=0"`
	Notes          string          `json:"notes" validate:"max=500"`
	Status         PromotionStatus `json:"status" validate:"oneof=draft active paused expired"`
	Timestamps
}

// DiscountedPrice is originalPrice * (1 - discount/100), rounded to 2 decimals.
func (p Promotion) DiscountedPrice() decimal.Decimal {
	return DiscountedPrice(p.OriginalPrice, p.Discount)
}

// DurationDays is the number of started days between StartDate and EndDate.
func (p Promotion) DurationDays() int {
	return DurationDays(p.StartDate, p.EndDate)
}

// DiscountedPrice applies a percentage discount to a price and rounds to cents.
func DiscountedPrice(original, discount decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discount.Div(decimal.NewFromInt(100)))
	return original.Mul(factor).Round(2)
}

// DurationDays returns ceil((end - start) / 24h). A reversed range yields a
// non-positive value; validation rejects such ranges before they are stored.
func DurationDays(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	return int(math.Ceil(days))
}

// PromotionPatch carries only the promotion fields supplied in an update.
type PromotionPatch struct {
	PromotionCode  *string          `json:"promotionCode" validate:"omitempty,max=20"`
	ItemCode       *string          `json:"itemCode" validate:"omitempty,max=50"`
	ItemName       *string          `json:"itemName" validate:"omitempty,max=100"`
	MediaType      *MediaType       `json:"mediaType" validate:"omitempty,oneof=social email print web tv radio"`
	TargetAudience *[]Audience      `json:"targetAudience" validate:"omitempty,min=1,dive,oneof=new existing vip all"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	OriginalPrice  *decimal.Decimal `json:"originalPrice" validate:"omitempty,dgte=0"`
	Discount       *decimal.Decimal `json:"discount" validate:"omitempty,dgte=0,dlte=100"`
	Quantity       *int             `json:"quantity" validate:"omitempty,gte=0"`
	Notes          *string          `json:"notes" validate:"omitempty,max=500"`
	Status         *PromotionStatus `json:"status" validate:"omitempty,oneof=draft active paused expired"`
}

// ApplyTo merges the patch into p.
func (pp PromotionPatch) ApplyTo(p *Promotion) {
	setIfPresent(&p.PromotionCode, pp.PromotionCode)
	setIfPresent(&p.ItemCode, pp.ItemCode)
	setIfPresent(&p.ItemName, pp.ItemName)
	setIfPresent(&p.MediaType, pp.MediaType)
	setIfPresent(&p.TargetAudience, pp.TargetAudience)
	setIfPresent(&p.StartDate, pp.StartDate)
	setIfPresent(&p.EndDate, pp.EndDate)
	setIfPresent(&p.OriginalPrice, pp.OriginalPrice)
	setIfPresent(&p.Discount, pp.Discount)
	setIfPresent(&p.Quantity, pp.Quantity)
	setIfPresent(&p.Notes, pp.Notes)
	setIfPresent(&p.Status, pp.Status)
}
