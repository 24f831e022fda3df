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

const productColumns = `id, name, category, price, quantity, description, expiry_date, brand, nutritional_info, storage_condition, barcode, created_at, updated_at`

// PgxProductRepository stores products in the products table.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.Quantity,
		&p.Description,
		&p.ExpiryDate,
		&p.Brand,
		&p.NutritionalInfo,
		&p.StorageCondition,
		&p.Barcode,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductRepository) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	now := r.now()
	p.CreatedAt, p.UpdatedAt = now, now

	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + productColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanProduct, query,
		p.ID,
		p.Name,
		p.Category,
		p.Price,
		p.Quantity,
		p.Description,
		p.ExpiryDate,
		p.Brand,
		p.NutritionalInfo,
		p.StorageCondition,
		p.Barcode,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "product with this barcode", "")
	}
	return created, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := queryByID(ctx, &r.BaseRepository, scanProduct, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", id, err)
	}
	return p, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, opts domain.ListOptions) ([]domain.Product, error) {
	query, args := r.listQuery("products", productColumns, "created_at", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanProduct, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return records, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.UpdatedAt = r.now()

	query := `UPDATE products SET
			name = $2,
			category = $3,
			price = $4,
			quantity = $5,
			description = $6,
			expiry_date = $7,
			brand = $8,
			nutritional_info = $9,
			storage_condition = $10,
			barcode = $11,
			updated_at = $12
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanProduct, query,
		p.ID,
		p.Name,
		p.Category,
		p.Price,
		p.Quantity,
		p.Description,
		p.ExpiryDate,
		p.Brand,
		p.NutritionalInfo,
		p.StorageCondition,
		p.Barcode,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "product with this barcode", "")
	}
	return updated, nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanProduct, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "product with this barcode")
	}
	return deleted, nil
}
