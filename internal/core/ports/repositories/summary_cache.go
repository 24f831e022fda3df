package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// SummaryCache stores the most recent dashboard snapshot.
type SummaryCache interface {
	// GetSummary returns the cached snapshot, or nil without error on a miss.
	GetSummary(ctx context.Context) (*domain.Summary, error)

	// SetSummary stores a snapshot for ttl.
	SetSummary(ctx context.Context, summary domain.Summary, ttl time.Duration) error
}
