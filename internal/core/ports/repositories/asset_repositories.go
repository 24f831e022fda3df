package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves an asset by its ID.
	FindAssetByID(ctx context.Context, id string) (*domain.Asset, error)

	// ListAssets retrieves asset records in their default order.
	ListAssets(ctx context.Context, opts domain.ListOptions) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// CreateAsset persists a new asset. The store assigns timestamps.
	CreateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)

	// UpdateAsset replaces a stored asset. A missing record yields apperrors.ErrNotFound.
	UpdateAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)

	// DeleteAsset removes an asset and returns the removed record.
	DeleteAsset(ctx context.Context, id string) (*domain.Asset, error)
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
