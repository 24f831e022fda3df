// Package cache holds summary cache adapters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	redis "github.com/redis/go-redis/v9"
)

const summaryKey = "bizrec:dashboard:summary"

// RedisSummaryCache stores the dashboard snapshot as JSON under a single key.
type RedisSummaryCache struct {
	client *redis.Client
}

var _ portsrepo.SummaryCache = (*RedisSummaryCache)(nil)

func NewRedisSummaryCache(addr string, password string, db int) *RedisSummaryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

func (c *RedisSummaryCache) GetSummary(ctx context.Context) (*domain.Summary, error) {
	val, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary domain.Summary
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisSummaryCache) SetSummary(ctx context.Context, summary domain.Summary, ttl time.Duration) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey, payload, ttl).Err()
}
