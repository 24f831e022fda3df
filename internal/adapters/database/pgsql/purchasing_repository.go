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

const supplierColumns = `id, supplier_code, name, contact, item_categories, payment_terms, address, status, created_at, updated_at`

// PgxSupplierRepository stores suppliers in the suppliers table.
type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

func scanSupplier(row rowScanner) (*domain.Supplier, error) {
	var (
		s          domain.Supplier
		categories []string
	)
	err := row.Scan(
		&s.ID,
		&s.SupplierID,
		&s.Name,
		&s.Contact,
		&categories,
		&s.PaymentTerms,
		&s.Address,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ItemCategories = fromStrings[domain.ItemCategory](categories)
	return &s, nil
}

func (r *PgxSupplierRepository) CreateSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now

	query := `INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + supplierColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanSupplier, query,
		s.ID,
		s.SupplierID,
		s.Name,
		s.Contact,
		toStrings(s.ItemCategories),
		s.PaymentTerms,
		s.Address,
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "supplier with this supplierId", "")
	}
	return created, nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := queryByID(ctx, &r.BaseRepository, scanSupplier, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", id, err)
	}
	return s, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]domain.Supplier, error) {
	query, args := r.listQuery("suppliers", supplierColumns, "created_at", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanSupplier, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return records, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error) {
	s.UpdatedAt = r.now()

	query := `UPDATE suppliers SET
			supplier_code = $2,
			name = $3,
			contact = $4,
			item_categories = $5,
			payment_terms = $6,
			address = $7,
			status = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + supplierColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanSupplier, query,
		s.ID,
		s.SupplierID,
		s.Name,
		s.Contact,
		toStrings(s.ItemCategories),
		s.PaymentTerms,
		s.Address,
		s.Status,
		s.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "supplier with this supplierId", "")
	}
	return updated, nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `DELETE FROM suppliers WHERE id = $1 RETURNING ` + supplierColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanSupplier, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "supplier")
	}
	return deleted, nil
}

const orderColumns = `id, order_number, supplier_id, items, unit_price, discount, delivery_date, status, payment_method, shipping_address, created_at, updated_at`

// PgxOrderRepository stores orders in the orders table.
type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.SupplierID,
		&o.Items,
		&o.Pricing.UnitPrice,
		&o.Pricing.Discount,
		&o.DeliveryDate,
		&o.Status,
		&o.PaymentMethod,
		&o.ShippingAddress,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PgxOrderRepository) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	now := r.now()
	o.CreatedAt, o.UpdatedAt = now, now

	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + orderColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanOrder, query,
		o.ID,
		o.OrderNumber,
		o.SupplierID,
		o.Items,
		o.Pricing.UnitPrice,
		o.Pricing.Discount,
		o.DeliveryDate,
		o.Status,
		o.PaymentMethod,
		o.ShippingAddress,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "order with this number", "supplierId")
	}
	return created, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := queryByID(ctx, &r.BaseRepository, scanOrder, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", id, err)
	}
	return o, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, opts domain.ListOptions) ([]domain.Order, error) {
	query, args := r.listQuery("orders", orderColumns, "created_at", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanOrder, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return records, nil
}

func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	o.UpdatedAt = r.now()

	query := `UPDATE orders SET
			order_number = $2,
			supplier_id = $3,
			items = $4,
			unit_price = $5,
			discount = $6,
			delivery_date = $7,
			status = $8,
			payment_method = $9,
			shipping_address = $10,
			updated_at = $11
		WHERE id = $1
		RETURNING ` + orderColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanOrder, query,
		o.ID,
		o.OrderNumber,
		o.SupplierID,
		o.Items,
		o.Pricing.UnitPrice,
		o.Pricing.Discount,
		o.DeliveryDate,
		o.Status,
		o.PaymentMethod,
		o.ShippingAddress,
		o.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "order with this number", "supplierId")
	}
	return updated, nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	query := `DELETE FROM orders WHERE id = $1 RETURNING ` + orderColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanOrder, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "order with this number")
	}
	return deleted, nil
}
