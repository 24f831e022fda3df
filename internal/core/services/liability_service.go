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

type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// NewLiabilityService creates a new liability service.
func NewLiabilityService(repo portsrepo.LiabilityRepositoryFacade, opts ...ServiceOption) portssvc.LiabilitySvcFacade {
	svc := &liabilityService{liabilityRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

func (s *liabilityService) CreateLiability(ctx context.Context, l domain.Liability) (*domain.Liability, error) {
	l.ID = uuid.NewString()

	created, err := s.liabilityRepo.CreateLiability(ctx, l)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create liability", slog.String("item_code", l.ItemCode))
		return nil, fmt.Errorf("failed to create liability: %w", err)
	}

	s.LogInfo(ctx, "Liability created", slog.String("liability_id", created.ID))
	return created, nil
}

func (s *liabilityService) GetLiabilityByID(ctx context.Context, id string) (*domain.Liability, error) {
	l, err := s.liabilityRepo.FindLiabilityByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get liability", slog.String("liability_id", id))
		return nil, fmt.Errorf("failed to get liability %s: %w", id, err)
	}
	return l, nil
}

func (s *liabilityService) ListLiabilities(ctx context.Context, opts domain.ListOptions) ([]domain.Liability, error) {
	records, err := s.liabilityRepo.ListLiabilities(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liability records")
		return nil, fmt.Errorf("failed to list liability records: %w", err)
	}
	if records == nil {
		return []domain.Liability{}, nil
	}
	return records, nil
}

func (s *liabilityService) UpdateLiability(ctx context.Context, id string, patch domain.LiabilityPatch) (*domain.Liability, error) {
	current, err := s.liabilityRepo.FindLiabilityByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load liability for update", slog.String("liability_id", id))
		return nil, fmt.Errorf("failed to get liability %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.liabilityRepo.UpdateLiability(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update liability", slog.String("liability_id", id))
		return nil, fmt.Errorf("failed to update liability %s: %w", id, err)
	}

	s.LogInfo(ctx, "Liability updated", slog.String("liability_id", id))
	return updated, nil
}

func (s *liabilityService) DeleteLiability(ctx context.Context, id string) (*domain.Liability, error) {
	deleted, err := s.liabilityRepo.DeleteLiability(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete liability", slog.String("liability_id", id))
		return nil, fmt.Errorf("failed to delete liability %s: %w", id, err)
	}

	s.LogInfo(ctx, "Liability deleted", slog.String("liability_id", id))
	return deleted, nil
}
