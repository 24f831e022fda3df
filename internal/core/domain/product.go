package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory is the shelf category of a product.
type ProductCategory string

// ProductCategories lists every accepted product category.
var ProductCategories = []ProductCategory{
	"dairy", "produce", "bakery", "meat", "frozen", "pantry", "beverages", "household",
}

// StorageCondition describes how a product must be stored.
type StorageCondition string

const (
	StorageRoomTemperature StorageCondition = "room temperature"
	StorageRefrigerated    StorageCondition = "refrigerated"
	StorageFrozen          StorageCondition = "frozen"
)

// NutritionalInfo is optional product labelling data.
type NutritionalInfo struct {
	Calories  *decimal.Decimal `json:"calories,omitempty" validate:"omitempty,dgte=0"`
	Allergens []string         `json:"allergens,omitempty"`
}

// Product is a stocked item.
type Product struct {
	ID               string           `json:"id"`
	Name             string           `json:"name" validate:"max=50"`
	Category         ProductCategory  `json:"category" validate:"oneof=dairy produce bakery meat frozen pantry beverages household"`
	Price            decimal.Decimal  `json:"price" validate:"dgte=0.01"`
	Quantity         int              `json:"quantity" validate:"gte=0"`
	Description      string           `json:"description,omitempty" validate:"max=200"`
	ExpiryDate       time.Time        `json:"expiryDate"`
	Brand            string           `json:"brand,omitempty" validate:"max=30"`
	NutritionalInfo  *NutritionalInfo `json:"nutritionalInfo,omitempty"`
	StorageCondition StorageCondition `json:"storageCondition" validate:"oneof='room temperature' refrigerated frozen"`
	Barcode          string           `json:"barcode" validate:"barcode"`
	Timestamps
}

// ProductPatch carries only the product fields supplied in an update.
type ProductPatch struct {
	Name             *string           `json:"name" validate:"omitempty,max=50"`
	Category         *ProductCategory  `json:"category" validate:"omitempty,oneof=dairy produce bakery meat frozen pantry beverages household"`
	Price            *decimal.Decimal  `json:"price" validate:"omitempty,dgte=0.01"`
	Quantity         *int              `json:"quantity" validate:"omitempty,gte=0"`
	Description      *string           `json:"description" validate:"omitempty,max=200"`
	ExpiryDate       *time.Time        `json:"expiryDate"`
	Brand            *string           `json:"brand" validate:"omitempty,max=30"`
	NutritionalInfo  *NutritionalInfo  `json:"nutritionalInfo"`
	StorageCondition *StorageCondition `json:"storageCondition" validate:"omitempty,oneof='room temperature' refrigerated frozen"`
	Barcode          *string           `json:"barcode" validate:"omitempty,barcode"`
}

// ApplyTo merges the patch into p.
func (pp ProductPatch) ApplyTo(p *Product) {
	setIfPresent(&p.Name, pp.Name)
	setIfPresent(&p.Category, pp.Category)
	setIfPresent(&p.Price, pp.Price)
	setIfPresent(&p.Quantity, pp.Quantity)
	setIfPresent(&p.Description, pp.Description)
	setIfPresent(&p.ExpiryDate, pp.ExpiryDate)
	setIfPresent(&p.Brand, pp.Brand)
	if pp.NutritionalInfo != nil {
		p.NutritionalInfo = pp.NutritionalInfo
	}
	setIfPresent(&p.StorageCondition, pp.StorageCondition)
	setIfPresent(&p.Barcode, pp.Barcode)
}

// RoundPrice rounds a price to the nearest cent, as stored.
func RoundPrice(price decimal.Decimal) decimal.Decimal {
	return price.Round(2)
}
