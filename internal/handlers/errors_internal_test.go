package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("failed to create asset: %w", apperrors.NewValidationError("bad")), http.StatusBadRequest},
		{"not found", fmt.Errorf("failed to get asset x: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"duplicate", apperrors.NewDuplicateError("product with barcode 1 already exists"), http.StatusConflict},
		{"conflict", apperrors.NewConflictError("supplier still referenced"), http.StatusConflict},
		{"credentials", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"deadline", fmt.Errorf("failed to list orders: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"other", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestErrorBody(t *testing.T) {
	t.Run("validation carries details", func(t *testing.T) {
		verr := apperrors.NewValidationError("", apperrors.FieldViolation{Field: "price", Message: "price must be at least 0"})
		body := errorBody(fmt.Errorf("wrapped: %w", verr), http.StatusBadRequest, "Product", "creating product", false)
		assert.Equal(t, "price must be at least 0", body.Message)
		assert.Len(t, body.Details, 1)
		assert.Empty(t, body.Error)
	})

	t.Run("conflict shows only the state message", func(t *testing.T) {
		err := fmt.Errorf("failed to create order: %w", apperrors.NewDuplicateError("order with number PO-1 already exists"))
		body := errorBody(err, http.StatusConflict, "Order", "creating order", false)
		assert.Equal(t, "order with number PO-1 already exists", body.Message)
	})

	t.Run("not found names the entity", func(t *testing.T) {
		body := errorBody(apperrors.ErrNotFound, http.StatusNotFound, "Supplier", "fetching supplier", false)
		assert.Equal(t, "Supplier not found", body.Message)
	})

	t.Run("credentials are generic", func(t *testing.T) {
		body := errorBody(apperrors.ErrUnauthenticated, http.StatusUnauthorized, "Customer", "logging in", false)
		assert.Equal(t, "Invalid credentials", body.Message)
	})

	t.Run("server error exposes cause outside production", func(t *testing.T) {
		body := errorBody(errors.New("dial tcp: refused"), http.StatusInternalServerError, "Asset", "fetching assets", false)
		assert.Equal(t, "Error fetching assets", body.Message)
		assert.Equal(t, "dial tcp: refused", body.Error)
	})

	t.Run("server error hides cause in production", func(t *testing.T) {
		body := errorBody(errors.New("dial tcp: refused"), http.StatusInternalServerError, "Asset", "fetching assets", true)
		assert.Equal(t, genericServerError, body.Error)
		assert.NotContains(t, body.Message, "dial")
	})
}
