package validation

import (
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var assetFields = []string{"itemCode", "name", "assetType", "purchaseDate", "initialValue", "residualValue", "usefulLifeYears"}

// ValidateAssetCreate validates a new asset. All fields are required.
func (v *Validator) ValidateAssetCreate(in Input) (domain.Asset, error) {
	r := newReader(in)
	r.require(assetFields...)
	if err := r.missingError(); err != nil {
		return domain.Asset{}, err
	}

	a := domain.Asset{
		ItemCode:        r.str("itemCode"),
		Name:            r.str("name"),
		AssetType:       domain.AssetType(r.str("assetType")),
		PurchaseDate:    r.date("purchaseDate"),
		InitialValue:    r.number("initialValue"),
		ResidualValue:   r.number("residualValue"),
		UsefulLifeYears: r.integer("usefulLifeYears"),
	}
	if err := v.check(r, a); err != nil {
		return domain.Asset{}, err
	}
	a.ItemCode = strings.ToUpper(a.ItemCode)
	return a, nil
}

// ValidateAssetPatch validates the fields supplied in an asset update.
func (v *Validator) ValidateAssetPatch(in Input) (domain.AssetPatch, error) {
	r := newReader(in)
	r.forbidEmpty(assetFields...)

	p := domain.AssetPatch{
		ItemCode:        r.optString("itemCode"),
		Name:            r.optString("name"),
		AssetType:       typedPtr[domain.AssetType](r.optString("assetType")),
		PurchaseDate:    r.optDate("purchaseDate"),
		InitialValue:    r.optDecimal("initialValue"),
		ResidualValue:   r.optDecimal("residualValue"),
		UsefulLifeYears: r.optInt("usefulLifeYears"),
	}
	if err := v.check(r, p); err != nil {
		return domain.AssetPatch{}, err
	}
	upperPtr(p.ItemCode)
	return p, nil
}

var liabilityFields = []string{"itemCode", "name", "liabilityType", "startDate", "initialAmount", "interestRate", "termYears"}

// ValidateLiabilityCreate validates a new liability. All fields are required;
// an initialAmount of 0 is a value, not a missing field.
func (v *Validator) ValidateLiabilityCreate(in Input) (domain.Liability, error) {
	r := newReader(in)
	r.require(liabilityFields...)
	if err := r.missingError(); err != nil {
		return domain.Liability{}, err
	}

	l := domain.Liability{
		ItemCode:      r.str("itemCode"),
		Name:          r.str("name"),
		LiabilityType: domain.LiabilityType(r.str("liabilityType")),
		StartDate:     r.date("startDate"),
		InitialAmount: r.number("initialAmount"),
		InterestRate:  r.number("interestRate"),
		TermYears:     r.integer("termYears"),
	}
	if err := v.check(r, l); err != nil {
		return domain.Liability{}, err
	}
	l.ItemCode = strings.ToUpper(l.ItemCode)
	return l, nil
}

// ValidateLiabilityPatch validates the fields supplied in a liability update.
func (v *Validator) ValidateLiabilityPatch(in Input) (domain.LiabilityPatch, error) {
	r := newReader(in)
	r.forbidEmpty(liabilityFields...)

	p := domain.LiabilityPatch{
		ItemCode:      r.optString("itemCode"),
		Name:          r.optString("name"),
		LiabilityType: typedPtr[domain.LiabilityType](r.optString("liabilityType")),
		StartDate:     r.optDate("startDate"),
		InitialAmount: r.optDecimal("initialAmount"),
		InterestRate:  r.optDecimal("interestRate"),
		TermYears:     r.optInt("termYears"),
	}
	if err := v.check(r, p); err != nil {
		return domain.LiabilityPatch{}, err
	}
	upperPtr(p.ItemCode)
	return p, nil
}
