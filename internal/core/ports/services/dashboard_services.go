package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// DashboardSvc produces the business summary snapshot.
type DashboardSvc interface {
	// Summary folds products, assets, expenses, incomes and liabilities into a
	// snapshot. fresh skips any cached snapshot.
	Summary(ctx context.Context, fresh bool) (*domain.Summary, error)
}
