package domain

// ItemCategory is a category of goods a supplier provides.
type ItemCategory string

// SupplierStatus is the relationship state with a supplier.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
	SupplierPending  SupplierStatus = "pending"
)

// SupplierContact is how to reach a supplier. Email is optional.
type SupplierContact struct {
	Phone string `json:"phone" validate:"contactphone"`
	Email string `json:"email,omitempty" validate:"omitempty,emailaddr"`
}

// PaymentTerms describes how a supplier is paid.
type PaymentTerms struct {
	Method        string `json:"method" validate:"oneof=bank-transfer credit-card cash check"`
	AccountNumber string `json:"accountNumber,omitempty" validate:"max=20"`
}

// Supplier is a vendor the business orders from.
type Supplier struct {
	ID             string          `json:"id"`
	SupplierID     string          `json:"supplierId" validate:"max=10"`
	Name           string          `json:"name" validate:"max=50"`
	Contact        SupplierContact `json:"contact"`
	ItemCategories []ItemCategory  `json:"itemCategories" validate:"min=1,dive,oneof=groceries electronics household office-supplies clothing"`
	PaymentTerms   PaymentTerms    `json:"paymentTerms"`
	Address        Address         `json:"address"`
	Status         SupplierStatus  `json:"status" validate:"oneof=active inactive pending"`
	Timestamps
}

// SupplierSummary is the supplier detail shown alongside order listings.
type SupplierSummary struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Summary returns the listing view of s.
func (s Supplier) Summary() SupplierSummary {
	return SupplierSummary{Name: s.Name, Phone: s.Contact.Phone}
}

// SupplierContactPatch carries the contact sub-fields supplied in an update.
type SupplierContactPatch struct {
	Phone *string `validate:"omitempty,contactphone"`
	Email *string `validate:"omitempty,emailaddr"`
}

// PaymentTermsPatch carries the payment term sub-fields supplied in an update.
type PaymentTermsPatch struct {
	Method        *string `validate:"omitempty,oneof=bank-transfer credit-card cash check"`
	AccountNumber *string `validate:"omitempty,max=20"`
}

// SupplierPatch carries only the supplier fields supplied in an update.
type SupplierPatch struct {
	SupplierID     *string               `json:"supplierId" validate:"omitempty,max=10"`
	Name           *string               `json:"name" validate:"omitempty,max=50"`
	Contact        *SupplierContactPatch `json:"contact"`
	ItemCategories *[]ItemCategory       `json:"itemCategories" validate:"omitempty,min=1,dive,oneof=groceries electronics household office-supplies clothing"`
	PaymentTerms   *PaymentTermsPatch    `json:"paymentTerms"`
	Address        *AddressPatch         `json:"address"`
	Status         *SupplierStatus       `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// ApplyTo merges the patch into s.
func (p SupplierPatch) ApplyTo(s *Supplier) {
	setIfPresent(&s.SupplierID, p.SupplierID)
	setIfPresent(&s.Name, p.Name)
	if p.Contact != nil {
		setIfPresent(&s.Contact.Phone, p.Contact.Phone)
		setIfPresent(&s.Contact.Email, p.Contact.Email)
	}
	setIfPresent(&s.ItemCategories, p.ItemCategories)
	if p.PaymentTerms != nil {
		setIfPresent(&s.PaymentTerms.Method, p.PaymentTerms.Method)
		setIfPresent(&s.PaymentTerms.AccountNumber, p.PaymentTerms.AccountNumber)
	}
	p.Address.ApplyTo(&s.Address)
	setIfPresent(&s.Status, p.Status)
}
