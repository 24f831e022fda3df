package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, opts ...ServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	e.ID = uuid.NewString()

	created, err := s.expenseRepo.CreateExpense(ctx, e)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create expense", slog.String("title", e.Title))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", created.ID))
	return created, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string) (*domain.Expense, error) {
	e, err := s.expenseRepo.FindExpenseByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get expense", slog.String("expense_id", id))
		return nil, fmt.Errorf("failed to get expense %s: %w", id, err)
	}
	return e, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.Expense, error) {
	records, err := s.expenseRepo.ListExpenses(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense records")
		return nil, fmt.Errorf("failed to list expense records: %w", err)
	}
	if records == nil {
		return []domain.Expense{}, nil
	}
	return records, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, patch domain.ExpensePatch) (*domain.Expense, error) {
	current, err := s.expenseRepo.FindExpenseByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load expense for update", slog.String("expense_id", id))
		return nil, fmt.Errorf("failed to get expense %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.expenseRepo.UpdateExpense(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update expense", slog.String("expense_id", id))
		return nil, fmt.Errorf("failed to update expense %s: %w", id, err)
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", id))
	return updated, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) (*domain.Expense, error) {
	deleted, err := s.expenseRepo.DeleteExpense(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete expense", slog.String("expense_id", id))
		return nil, fmt.Errorf("failed to delete expense %s: %w", id, err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", id))
	return deleted, nil
}
