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

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(repo portsrepo.AssetRepositoryFacade, opts ...ServiceOption) portssvc.AssetSvcFacade {
	svc := &assetService{assetRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	a.ID = uuid.NewString()

	created, err := s.assetRepo.CreateAsset(ctx, a)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create asset", slog.String("item_code", a.ItemCode))
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created", slog.String("asset_id", created.ID))
	return created, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, id string) (*domain.Asset, error) {
	a, err := s.assetRepo.FindAssetByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get asset", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to get asset %s: %w", id, err)
	}
	return a, nil
}

func (s *assetService) ListAssets(ctx context.Context, opts domain.ListOptions) ([]domain.Asset, error) {
	records, err := s.assetRepo.ListAssets(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list asset records")
		return nil, fmt.Errorf("failed to list asset records: %w", err)
	}
	if records == nil {
		return []domain.Asset{}, nil
	}
	return records, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error) {
	current, err := s.assetRepo.FindAssetByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load asset for update", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to get asset %s: %w", id, err)
	}

	patch.ApplyTo(current)

	updated, err := s.assetRepo.UpdateAsset(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update asset", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to update asset %s: %w", id, err)
	}

	s.LogInfo(ctx, "Asset updated", slog.String("asset_id", id))
	return updated, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) (*domain.Asset, error) {
	deleted, err := s.assetRepo.DeleteAsset(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete asset", slog.String("asset_id", id))
		return nil, fmt.Errorf("failed to delete asset %s: %w", id, err)
	}

	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", id))
	return deleted, nil
}
