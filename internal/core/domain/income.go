package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType is how money moved for an income or expense.
type PaymentType string

const (
	PaymentCash     PaymentType = "cash"
	PaymentCard     PaymentType = "card"
	PaymentTransfer PaymentType = "transfer"
	PaymentCheck    PaymentType = "check"
)

// IncomePaymentTypes lists the payment types accepted for incomes.
var IncomePaymentTypes = []PaymentType{PaymentCash, PaymentCard, PaymentTransfer, PaymentCheck}

// ExpensePaymentTypes lists the payment types accepted for expenses. Checks are not accepted.
var ExpensePaymentTypes = []PaymentType{PaymentCash, PaymentCard, PaymentTransfer}

// Income is money received.
type Income struct {
	ID          string          `json:"id"`
	Title       string          `json:"title" validate:"max=50"`
	Amount      decimal.Decimal `json:"amount" validate:"dgt=0"`
	Category    string          `json:"category" validate:"max=50"`
	Description string          `json:"description" validate:"max=200"`
	PaymentType PaymentType     `json:"paymentType" validate:"oneof=cash card transfer check"`
	Date        time.Time       `json:"date"`
	Timestamps
}

// IncomePatch carries only the income fields supplied in an update.
type IncomePatch struct {
	Title       *string          `json:"title" validate:"omitempty,max=50"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,dgt=0"`
	Category    *string          `json:"category" validate:"omitempty,max=50"`
	Description *string          `json:"description" validate:"omitempty,max=200"`
	PaymentType *PaymentType     `json:"paymentType" validate:"omitempty,oneof=cash card transfer check"`
	Date        *time.Time       `json:"date"`
}

// ApplyTo merges the patch into in.
func (p IncomePatch) ApplyTo(in *Income) {
	setIfPresent(&in.Title, p.Title)
	setIfPresent(&in.Amount, p.Amount)
	setIfPresent(&in.Category, p.Category)
	setIfPresent(&in.Description, p.Description)
	setIfPresent(&in.PaymentType, p.PaymentType)
	setIfPresent(&in.Date, p.Date)
}
