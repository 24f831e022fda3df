package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiabilityType classifies a debt.
type LiabilityType string

const (
	LiabilityLoan       LiabilityType = "loan"
	LiabilityMortgage   LiabilityType = "mortgage"
	LiabilityCreditCard LiabilityType = "credit-card"
	LiabilityOther      LiabilityType = "other"
)

// LiabilityTypes lists every accepted liability type.
var LiabilityTypes = []LiabilityType{LiabilityLoan, LiabilityMortgage, LiabilityCreditCard, LiabilityOther}

// LiabilityTypeValues returns the accepted liability types as plain strings.
func LiabilityTypeValues() []string { return stringValues(LiabilityTypes) }

// IsValid reports whether t is a known liability type.
func (t LiabilityType) IsValid() bool { return contains(LiabilityTypes, t) }

// Liability is money owed by the business.
type Liability struct {
	ID            string          `json:"id"`
	ItemCode      string          `json:"itemCode" validate:"max=10"`
	Name          string          `json:"name" validate:"min=2,max=30"`
	LiabilityType LiabilityType   `json:"liabilityType" validate:"oneof=loan mortgage credit-card other"`
	StartDate     time.Time       `json:"startDate"`
	InitialAmount decimal.Decimal `json:"initialAmount" validate:"dgte=0"`
	InterestRate  decimal.Decimal `json:"interestRate" validate:"dgte=0,dlte=100"`
	TermYears     int             `json:"termYears" validate:"min=1,max=30"`
	Timestamps
}

// LiabilityPatch carries only the liability fields supplied in an update.
type LiabilityPatch struct {
	ItemCode      *string          `json:"itemCode" validate:"omitempty,max=10"`
	Name          *string          `json:"name" validate:"omitempty,min=2,max=30"`
	LiabilityType *LiabilityType   `json:"liabilityType" validate:"omitempty,oneof=loan mortgage credit-card other"`
	StartDate     *time.Time       `json:"startDate"`
	InitialAmount *decimal.Decimal `json:"initialAmount" validate:"omitempty,dgte=0"`
	InterestRate  *decimal.Decimal `json:"interestRate" validate:"omitempty,dgte=0,dlte=100"`
	TermYears     *int             `json:"termYears" validate:"omitempty,min=1,max=30"`
}

// ApplyTo merges the patch into l.
func (p LiabilityPatch) ApplyTo(l *Liability) {
	setIfPresent(&l.ItemCode, p.ItemCode)
	setIfPresent(&l.Name, p.Name)
	setIfPresent(&l.LiabilityType, p.LiabilityType)
	setIfPresent(&l.StartDate, p.StartDate)
	setIfPresent(&l.InitialAmount, p.InitialAmount)
	setIfPresent(&l.InterestRate, p.InterestRate)
	setIfPresent(&l.TermYears, p.TermYears)
}
