package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent.
type Expense struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"max=30"`
	Amount      decimal.Decimal `json:"amount" validate:"dgt=0"`
	Category    string          `json:"category" validate:"max=50"`
	Description string          `json:"description" validate:"max=50"`
	PaymentType PaymentType     `json:"paymentType" validate:"oneof=cash card transfer"`
	Date        time.Time       `json:"date"`
	Timestamps
}

// ExpensePatch carries only the expense fields supplied in an update.
type ExpensePatch struct {
	Title       *string          `json:"title" validate:"omitempty,max=30"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,dgt=0"`
	Category    *string          `json:"category" validate:"omitempty,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=50"`
	PaymentType *PaymentType     `json:"paymentType" validate:"omitempty,oneof=cash card transfer"`
	Date        *time.Time       `json:"date"`
}

// ApplyTo merges the patch into e.
func (p ExpensePatch) ApplyTo(e *Expense) {
	setIfPresent(&e.Title, p.Title)
	setIfPresent(&e.Amount, p.Amount)
	setIfPresent(&e.Category, p.Category)
	setIfPresent(&e.Description, p.Description)
	setIfPresent(&e.PaymentType, p.PaymentType)
	setIfPresent(&e.Date, p.Date)
}
