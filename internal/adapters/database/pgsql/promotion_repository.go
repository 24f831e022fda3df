package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const promotionColumns = `id, promotion_code, item_code, item_name, media_type, target_audience, start_date, end_date, original_price, discount, quantity, notes, status, created_at, updated_at`

// PgxPromotionRepository stores promotions in the promotions table.
type PgxPromotionRepository struct {
	BaseRepository
}

func newPgxPromotionRepository(pool *pgxpool.Pool) portsrepo.PromotionRepositoryFacade {
	return &PgxPromotionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PromotionRepositoryFacade = (*PgxPromotionRepository)(nil)

func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var (
		p        domain.Promotion
		audience []string
	)
	err := row.Scan(
		&p.ID,
		&p.PromotionCode,
		&p.ItemCode,
		&p.ItemName,
		&p.MediaType,
		&audience,
		&p.StartDate,
		&p.EndDate,
		&p.OriginalPrice,
		&p.Discount,
		&p.Quantity,
		&p.Notes,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.TargetAudience = fromStrings[domain.Audience](audience)
	return &p, nil
}

func (r *PgxPromotionRepository) CreatePromotion(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	now := r.now()
	p.CreatedAt, p.UpdatedAt = now, now

	query := `INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + promotionColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanPromotion, query,
		p.ID,
		p.PromotionCode,
		p.ItemCode,
		p.ItemName,
		p.MediaType,
		toStrings(p.TargetAudience),
		p.StartDate,
		p.EndDate,
		p.OriginalPrice,
		p.Discount,
		p.Quantity,
		p.Notes,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "promotion with this code", "")
	}
	return created, nil
}

func (r *PgxPromotionRepository) FindPromotionByID(ctx context.Context, id string) (*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`
	p, err := queryByID(ctx, &r.BaseRepository, scanPromotion, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find promotion by ID %s: %w", id, err)
	}
	return p, nil
}

func (r *PgxPromotionRepository) FindPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE UPPER(promotion_code) = UPPER($1)`
	p, err := queryOne(ctx, &r.BaseRepository, scanPromotion, query, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find promotion by code %s: %w", code, err)
	}
	return p, nil
}

func (r *PgxPromotionRepository) ListPromotions(ctx context.Context, opts domain.ListOptions) ([]domain.Promotion, error) {
	query, args := r.listQuery("promotions", promotionColumns, "start_date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanPromotion, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return records, nil
}

func (r *PgxPromotionRepository) UpdatePromotion(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	p.UpdatedAt = r.now()

	query := `UPDATE promotions SET
			promotion_code = $2,
			item_code = $3,
			item_name = $4,
			media_type = $5,
			target_audience = $6,
			start_date = $7,
			end_date = $8,
			original_price = $9,
			discount = $10,
			quantity = $11,
			notes = $12,
			status = $13,
			updated_at = $14
		WHERE id = $1
		RETURNING ` + promotionColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanPromotion, query,
		p.ID,
		p.PromotionCode,
		p.ItemCode,
		p.ItemName,
		p.MediaType,
		toStrings(p.TargetAudience),
		p.StartDate,
		p.EndDate,
		p.OriginalPrice,
		p.Discount,
		p.Quantity,
		p.Notes,
		p.Status,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "promotion with this code", "")
	}
	return updated, nil
}

func (r *PgxPromotionRepository) DeletePromotion(ctx context.Context, id string) (*domain.Promotion, error) {
	query := `DELETE FROM promotions WHERE id = $1 RETURNING ` + promotionColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanPromotion, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "promotion with this code")
	}
	return deleted, nil
}
