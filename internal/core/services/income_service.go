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

type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new income service.
func NewIncomeService(repo portsrepo.IncomeRepositoryFacade, opts ...ServiceOption) portssvc.IncomeSvcFacade {
	svc := &incomeService{incomeRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func (s *incomeService) CreateIncome(ctx context.Context, i domain.Income) (*domain.Income, error) {
	i.ID = uuid.NewString()

	created, err := s.incomeRepo.CreateIncome(ctx, i)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create income", slog.String("title", i.Title))
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	s.LogInfo(ctx, "Income created", slog.String("income_id", created.ID))
	return created, nil
}

func (s *incomeService) GetIncomeByID(ctx context.Context, id string) (*domain.Income, error) {
	i, err := s.incomeRepo.FindIncomeByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get income", slog.String("income_id", id))
		return nil, fmt.Errorf("failed to get income %s: %w", id, err)
	}
	return i, nil
}

func (s *incomeService) ListIncomes(ctx context.Context, opts domain.ListOptions) ([]domain.Income, error) {
	records, err := s.incomeRepo.ListIncomes(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income records")
		return nil, fmt.Errorf("failed to list income records: %w", err)
	}
	if records == nil {
		return []domain.Income{}, nil
	}
	return records, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, id string, patch domain.IncomePatch) (*domain.Income, error) {
	current, err := s.incomeRepo.FindIncomeByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load income for update", slog.String("income_id", id))
		return nil, fmt.Errorf("failed to get income %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.incomeRepo.UpdateIncome(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update income", slog.String("income_id", id))
		return nil, fmt.Errorf("failed to update income %s: %w", id, err)
	}

	s.LogInfo(ctx, "Income updated", slog.String("income_id", id))
	return updated, nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, id string) (*domain.Income, error) {
	deleted, err := s.incomeRepo.DeleteIncome(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete income", slog.String("income_id", id))
		return nil, fmt.Errorf("failed to delete income %s: %w", id, err)
	}

	s.LogInfo(ctx, "Income deleted", slog.String("income_id", id))
	return deleted, nil
}
