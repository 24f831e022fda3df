package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// IncomeReader defines read operations for income data
type IncomeReader interface {
	// FindIncomeByID retrieves an income by its ID.
	FindIncomeByID(ctx context.Context, id string) (*domain.Income, error)

	// ListIncomes retrieves income records in their default order.
	ListIncomes(ctx context.Context, opts domain.ListOptions) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income data
type IncomeWriter interface {
	// CreateIncome persists a new income. The store assigns timestamps.
	CreateIncome(ctx context.Context, income domain.Income) (*domain.Income, error)

	// UpdateIncome replaces a stored income. A missing record yields apperrors.ErrNotFound.
	UpdateIncome(ctx context.Context, income domain.Income) (*domain.Income, error)

	// DeleteIncome removes an income and returns the removed record.
	DeleteIncome(ctx context.Context, id string) (*domain.Income, error)
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
