package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// IncomeReaderSvc defines read operations for income data
type IncomeReaderSvc interface {
	// GetIncomeByID retrieves an income by ID.
	GetIncomeByID(ctx context.Context, id string) (*domain.Income, error)

	// ListIncomes retrieves income records.
	ListIncomes(ctx context.Context, opts domain.ListOptions) ([]domain.Income, error)
}

// IncomeWriterSvc defines write operations for income data
type IncomeWriterSvc interface {
	// CreateIncome stores a validated income.
	CreateIncome(ctx context.Context, income domain.Income) (*domain.Income, error)

	// UpdateIncome merges the supplied fields into a stored income.
	UpdateIncome(ctx context.Context, id string, patch domain.IncomePatch) (*domain.Income, error)

	// DeleteIncome removes an income and returns it.
	DeleteIncome(ctx context.Context, id string) (*domain.Income, error)
}

// IncomeSvcFacade combines all income-related service interfaces
type IncomeSvcFacade interface {
	IncomeReaderSvc
	IncomeWriterSvc
}
