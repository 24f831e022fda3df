package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves an asset by ID.
	GetAssetByID(ctx context.Context, id string) (*domain.Asset, error)

	// ListAssets retrieves asset records.
	ListAssets(ctx context.Context, opts domain.ListOptions) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset stores a validated asset.
	CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)

	// UpdateAsset merges the supplied fields into a stored asset.
	UpdateAsset(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error)

	// DeleteAsset removes an asset and returns it.
	DeleteAsset(ctx context.Context, id string) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
