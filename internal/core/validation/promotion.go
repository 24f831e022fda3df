package validation

import (
	"strings"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var promotionRequired = []string{
	"promotionCode", "itemCode", "itemName", "mediaType", "targetAudience",
	"startDate", "endDate", "originalPrice", "discount", "quantity",
}

const promotionWindowMessage = "startDate must be before endDate"

// ValidatePromotionCreate validates a new promotion. startDate must be
// strictly before endDate.
func (v *Validator) ValidatePromotionCreate(in Input) (domain.Promotion, error) {
	r := newReader(in)
	r.require(promotionRequired...)
	if err := r.missingError(); err != nil {
		return domain.Promotion{}, err
	}

	p := domain.Promotion{
		PromotionCode: r.str("promotionCode"),
		ItemCode:      r.str("itemCode"),
		ItemName:      r.str("itemName"),
		MediaType:     domain.MediaType(r.str("mediaType")),
		StartDate:     r.date("startDate"),
		EndDate:       r.date("endDate"),
		OriginalPrice: r.number("originalPrice"),
		Discount:      r.number("discount"),
		Quantity:      r.integer("quantity"),
		Notes:         r.str("notes"),
		Status:        domain.PromotionStatus(r.str("status")),
	}
	if audience := r.optStrings("targetAudience"); audience != nil {
		p.TargetAudience = typed[domain.Audience](*audience)
	}
	if p.Status == "" {
		p.Status = domain.PromotionDraft
	}
	if !r.errs.HasField("startDate") && !r.errs.HasField("endDate") && !p.StartDate.Before(p.EndDate) {
		r.errs.Add("startDate", promotionWindowMessage)
	}
	if err := v.check(r, p); err != nil {
		return domain.Promotion{}, err
	}
	p.PromotionCode = strings.ToUpper(p.PromotionCode)
	return p, nil
}

// ValidatePromotionPatch validates the fields supplied in a promotion update.
// The date window is re-checked by CheckPromotionWindow once the patch is merged.
func (v *Validator) ValidatePromotionPatch(in Input) (domain.PromotionPatch, error) {
	r := newReader(in)
	r.forbidEmpty(promotionRequired...)
	r.forbidEmpty("status")

	p := domain.PromotionPatch{
		PromotionCode: r.optString("promotionCode"),
		ItemCode:      r.optString("itemCode"),
		ItemName:      r.optString("itemName"),
		MediaType:     typedPtr[domain.MediaType](r.optString("mediaType")),
		StartDate:     r.optDate("startDate"),
		EndDate:       r.optDate("endDate"),
		OriginalPrice: r.optDecimal("originalPrice"),
		Discount:      r.optDecimal("discount"),
		Quantity:      r.optInt("quantity"),
		Notes:         r.optString("notes"),
		Status:        typedPtr[domain.PromotionStatus](r.optString("status")),
	}
	if audience := r.optStrings("targetAudience"); audience != nil {
		set := typed[domain.Audience](*audience)
		p.TargetAudience = &set
	}
	if err := v.check(r, p); err != nil {
		return domain.PromotionPatch{}, err
	}
	upperPtr(p.PromotionCode)
	return p, nil
}

// CheckPromotionWindow enforces startDate < endDate on a complete promotion.
func CheckPromotionWindow(p domain.Promotion) error {
	if p.StartDate.Before(p.EndDate) {
		return nil
	}
	return apperrors.NewValidationError("", apperrors.FieldViolation{Field: "startDate", Message: promotionWindowMessage})
}
