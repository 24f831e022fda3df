package cache

import (
	"context"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
)

// NoopSummaryCache always misses. It is used when Redis is not configured.
type NoopSummaryCache struct{}

var _ portsrepo.SummaryCache = NoopSummaryCache{}

func (NoopSummaryCache) GetSummary(_ context.Context) (*domain.Summary, error) {
	return nil, nil
}

func (NoopSummaryCache) SetSummary(_ context.Context, _ domain.Summary, _ time.Duration) error {
	return nil
}
