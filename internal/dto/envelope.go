// Package dto holds the JSON envelopes and response shapes served by the REST handlers.
package dto

import (
	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

func init() {
	// Money leaves the API as JSON numbers, matching what clients send.
	decimal.MarshalJSONWithoutQuotes = true
}

// DataResponse wraps a single record, with a message on writes.
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// ListResponse wraps a page of records with its length.
type ListResponse struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}

// ErrorResponse is returned for every failed request.
// Details lists per-field violations on validation failures; Error carries the
// underlying cause on server failures.
type ErrorResponse struct {
	Message string                     `json:"message"`
	Details []apperrors.FieldViolation `json:"details,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

// NewDataResponse builds a DataResponse.
func NewDataResponse(message string, data any) DataResponse {
	return DataResponse{Message: message, Data: data}
}

// NewListResponse builds a ListResponse from an already mapped slice.
func NewListResponse[T any](items []T) ListResponse {
	if items == nil {
		items = []T{}
	}
	return ListResponse{Count: len(items), Data: items}
}

// MapList converts every record with fn.
func MapList[S, T any](records []S, fn func(*S) T) []T {
	out := make([]T, len(records))
	for i := range records {
		out[i] = fn(&records[i])
	}
	return out
}
