package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is a point-in-time dashboard snapshot folded from five collections.
type Summary struct {
	ProductCount   int             `json:"productCount"`
	AssetCount     int             `json:"assetCount"`
	LiabilityCount int             `json:"liabilityCount"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetWorth       decimal.Decimal `json:"netWorth"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// Summarize folds the given collections into a Summary. Empty inputs yield
// zero counts and sums. GeneratedAt is left for the caller to set.
func Summarize(products []Product, assets []Asset, expenses []Expense, incomes []Income, liabilities []Liability) Summary {
	s := Summary{
		ProductCount:   len(products),
		AssetCount:     len(assets),
		LiabilityCount: len(liabilities),
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
	}
	for _, in := range incomes {
		s.TotalIncome = s.TotalIncome.Add(in.Amount)
	}
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	s.NetWorth = NetWorth(assets, liabilities)
	return s
}

// NetWorth is the sum of asset initial values minus the sum of liability initial amounts.
func NetWorth(assets []Asset, liabilities []Liability) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.InitialValue)
	}
	for _, l := range liabilities {
		total = total.Sub(l.InitialAmount)
	}
	return total
}
