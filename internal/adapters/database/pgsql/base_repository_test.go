package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	dup := mapWriteError(&pgconn.PgError{Code: uniqueViolation}, "order with this number", "supplierId")
	assert.ErrorIs(t, dup, apperrors.ErrDuplicate)
	assert.Contains(t, dup.Error(), "order with this number already exists")

	ref := mapWriteError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolation}), "order", "supplierId")
	var verr *apperrors.ValidationError
	assert.True(t, errors.As(ref, &verr))
	assert.True(t, verr.HasField("supplierId"))

	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: checkViolation, ConstraintName: "promotions_window"}, "promotion", ""), apperrors.ErrValidation)
	assert.ErrorIs(t, mapWriteError(apperrors.ErrNotFound, "asset", ""), apperrors.ErrNotFound)

	other := mapWriteError(assert.AnError, "asset", "")
	var appErr *apperrors.AppError
	assert.True(t, errors.As(other, &appErr))
	assert.ErrorIs(t, other, assert.AnError)
}

func TestMapDeleteError(t *testing.T) {
	assert.ErrorIs(t, mapDeleteError(&pgconn.PgError{Code: foreignKeyViolation}, "supplier"), apperrors.ErrConflict)
	assert.ErrorIs(t, mapDeleteError(apperrors.ErrNotFound, "supplier"), apperrors.ErrNotFound)
	assert.ErrorIs(t, mapDeleteError(fmt.Errorf("delete: %w", &pgconn.PgError{Code: invalidTextRepr}), "asset"), apperrors.ErrNotFound)
}

func TestMapWriteError_InvalidReference(t *testing.T) {
	err := mapWriteError(&pgconn.PgError{Code: invalidTextRepr}, "order", "supplierId")
	var verr *apperrors.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("supplierId"))
}

// Ids that are not UUIDs are rejected before the pool is used, so the
// repositories below run without a database.
func TestNonUUIDIdentifiersAreNotFound(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(id string) error
	}{
		{"find asset", func(id string) error { _, err := (&PgxAssetRepository{}).FindAssetByID(ctx, id); return err }},
		{"delete asset", func(id string) error { _, err := (&PgxAssetRepository{}).DeleteAsset(ctx, id); return err }},
		{"delete liability", func(id string) error { _, err := (&PgxLiabilityRepository{}).DeleteLiability(ctx, id); return err }},
		{"delete income", func(id string) error { _, err := (&PgxIncomeRepository{}).DeleteIncome(ctx, id); return err }},
		{"delete expense", func(id string) error { _, err := (&PgxExpenseRepository{}).DeleteExpense(ctx, id); return err }},
		{"find product", func(id string) error { _, err := (&PgxProductRepository{}).FindProductByID(ctx, id); return err }},
		{"find supplier", func(id string) error { _, err := (&PgxSupplierRepository{}).FindSupplierByID(ctx, id); return err }},
		{"delete order", func(id string) error { _, err := (&PgxOrderRepository{}).DeleteOrder(ctx, id); return err }},
		{"delete promotion", func(id string) error { _, err := (&PgxPromotionRepository{}).DeletePromotion(ctx, id); return err }},
		{"find customer", func(id string) error { _, err := (&PgxCustomerRepository{}).FindCustomerByID(ctx, id); return err }},
		{"delete inquiry", func(id string) error { _, err := (&PgxInquiryRepository{}).DeleteInquiry(ctx, id); return err }},
		{"find suggestion", func(id string) error { _, err := (&PgxSuggestionRepository{}).FindSuggestionByID(ctx, id); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, id := range []string{"abc", "", "12345"} {
				assert.ErrorIs(t, tt.call(id), apperrors.ErrNotFound, "id %q", id)
			}
		})
	}
}

func TestListQuery(t *testing.T) {
	r := &BaseRepository{}

	query, args := r.listQuery("assets", "id", "purchase_date", domain.ListOptions{})
	assert.Equal(t, "SELECT id FROM assets ORDER BY purchase_date DESC, created_at DESC, id DESC LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []any{nil, 0}, args)

	query, args = r.listQuery("assets", "id", "purchase_date", domain.ListOptions{Limit: 10, Offset: 20, Ascending: true})
	assert.Contains(t, query, "ORDER BY purchase_date ASC, created_at ASC, id ASC")
	assert.Equal(t, []any{10, 20}, args)
}

func TestStringSliceConversions(t *testing.T) {
	cats := []domain.ItemCategory{"groceries", "office-supplies"}
	assert.Equal(t, []string{"groceries", "office-supplies"}, toStrings(cats))
	assert.Equal(t, cats, fromStrings[domain.ItemCategory]([]string{"groceries", "office-supplies"}))
}
