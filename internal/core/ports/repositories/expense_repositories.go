package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its ID.
	FindExpenseByID(ctx context.Context, id string) (*domain.Expense, error)

	// ListExpenses retrieves expense records in their default order.
	ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// CreateExpense persists a new expense. The store assigns timestamps.
	CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense replaces a stored expense. A missing record yields apperrors.ErrNotFound.
	UpdateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes an expense and returns the removed record.
	DeleteExpense(ctx context.Context, id string) (*domain.Expense, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
