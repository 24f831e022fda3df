package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderResponse_AddsTotal(t *testing.T) {
	order := domain.Order{
		ID:          "o-1",
		OrderNumber: "PO-1",
		Items: []domain.OrderLineItem{
			{ItemCode: "A", Name: "Flour", Quantity: 2},
			{ItemCode: "B", Name: "Sugar", Quantity: 1},
		},
		Pricing: domain.OrderPricing{UnitPrice: decimal.RequireFromString("2.50"), Discount: decimal.NewFromInt(10)},
	}

	raw, err := json.Marshal(dto.ToOrderResponse(&order))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "PO-1", body["orderNumber"])
	assert.InDelta(t, 6.75, body["total"], 1e-9)
	assert.Contains(t, body, "createdAt")
}

func TestToListOrderResponseWithSuppliers(t *testing.T) {
	orders := []domain.Order{
		{ID: "o-1", SupplierID: "s-1"},
		{ID: "o-2", SupplierID: "s-gone"},
	}
	suppliers := map[string]domain.SupplierSummary{"s-1": {Name: "Fresh Farms", Phone: "5550100"}}

	out := dto.ToListOrderResponseWithSuppliers(orders, suppliers)

	require.Len(t, out, 2)
	require.NotNil(t, out[0].Supplier)
	assert.Equal(t, "Fresh Farms", out[0].Supplier.Name)
	assert.Nil(t, out[1].Supplier)

	raw, err := json.Marshal(out[1])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"supplier":`)
}

func TestToPromotionResponse_DerivedFields(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := domain.Promotion{
		PromotionCode: "SPRING",
		StartDate:     start,
		EndDate:       start.Add(36 * time.Hour),
		OriginalPrice: decimal.RequireFromString("19.99"),
		Discount:      decimal.NewFromInt(15),
	}

	resp := dto.ToPromotionResponse(&p)
	assert.Equal(t, "16.99", resp.DiscountedPrice.StringFixed(2))
	assert.Equal(t, 2, resp.DurationDays)
}

func TestToCustomerResponse_OmitsPasswordHash(t *testing.T) {
	c := domain.Customer{ID: "c-1", Email: "jane@example.com", PasswordHash: "$2a$10$secret", Role: domain.RoleCustomer}

	raw, err := json.Marshal(dto.ToCustomerResponse(&c))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestFeedbackResponses_FormattedDate(t *testing.T) {
	in := domain.Inquiry{InquiryID: "abc", Timestamps: domain.Timestamps{CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)}}
	assert.Equal(t, "January 2, 2026", dto.ToInquiryResponse(&in).FormattedDate)

	sg := domain.Suggestion{SuggestionID: "def", SubmittedDate: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "July 4, 2026", dto.ToSuggestionResponse(&sg).FormattedDate)
}

func TestNewListResponse(t *testing.T) {
	empty := dto.NewListResponse[dto.OrderResponse](nil)
	assert.Equal(t, 0, empty.Count)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"data":[]}`, string(raw))

	list := dto.NewListResponse(dto.ToListOrderResponse([]domain.Order{{ID: "a"}, {ID: "b"}}))
	assert.Equal(t, 2, list.Count)
}
