package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense by ID.
	GetExpenseByID(ctx context.Context, id string) (*domain.Expense, error)

	// ListExpenses retrieves expense records.
	ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense stores a validated expense.
	CreateExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// UpdateExpense merges the supplied fields into a stored expense.
	UpdateExpense(ctx context.Context, id string, patch domain.ExpensePatch) (*domain.Expense, error)

	// DeleteExpense removes an expense and returns it.
	DeleteExpense(ctx context.Context, id string) (*domain.Expense, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
