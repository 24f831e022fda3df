package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType classifies what kind of asset is owned.
type AssetType string

const (
	AssetEquipment AssetType = "equipment"
	AssetProperty  AssetType = "property"
	AssetVehicle   AssetType = "vehicle"
	AssetOther     AssetType = "other"
)

// AssetTypes lists every accepted asset type.
var AssetTypes = []AssetType{AssetEquipment, AssetProperty, AssetVehicle, AssetOther}

// AssetTypeValues returns the accepted asset types as plain strings.
func AssetTypeValues() []string { return stringValues(AssetTypes) }

// IsValid reports whether t is a known asset type.
func (t AssetType) IsValid() bool { return contains(AssetTypes, t) }

// Asset is something of value owned by the business.
type Asset struct {
	ID              string          `json:"id"`
	ItemCode        string          `json:"itemCode" validate:"max=10"`
	Name            string          `json:"name" validate:"min=2,max=30"`
	AssetType       AssetType       `json:"assetType" validate:"oneof=equipment property vehicle other"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	InitialValue    decimal.Decimal `json:"initialValue" validate:"dgte=0"`
	ResidualValue   decimal.Decimal `json:"residualValue" validate:"dgte=0"`
	UsefulLifeYears int             `json:"usefulLifeYears" validate:"min=1,max=100"`
	Timestamps
}

// AssetPatch carries only the asset fields supplied in an update.
type AssetPatch struct {
	ItemCode        *string          `json:"itemCode" validate:"omitempty,max=10"`
	Name            *string          `json:"name" validate:"omitempty,min=2,max=30"`
	AssetType       *AssetType       `json:"assetType" validate:"omitempty,oneof=equipment property vehicle other"`
	PurchaseDate    *time.Time       `json:"purchaseDate"`
	InitialValue    *decimal.Decimal `json:"initialValue" validate:"omitempty,dgte=0"`
	ResidualValue   *decimal.Decimal `json:"residualValue" validate:"omitempty,dgte=0"`
	UsefulLifeYears *int             `json:"usefulLifeYears" validate:"omitempty,min=1,max=100"`
}

// ApplyTo merges the patch into a.
func (p AssetPatch) ApplyTo(a *Asset) {
	setIfPresent(&a.ItemCode, p.ItemCode)
	setIfPresent(&a.Name, p.Name)
	setIfPresent(&a.AssetType, p.AssetType)
	setIfPresent(&a.PurchaseDate, p.PurchaseDate)
	setIfPresent(&a.InitialValue, p.InitialValue)
	setIfPresent(&a.ResidualValue, p.ResidualValue)
	setIfPresent(&a.UsefulLifeYears, p.UsefulLifeYears)
}
