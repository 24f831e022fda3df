package domain_test

import (
	"slices"
	"testing"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Total(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.OrderLineItem
		pricing domain.OrderPricing
		want    string
	}{
		{
			name:    "no items",
			items:   nil,
			pricing: domain.OrderPricing{UnitPrice: decimal.NewFromInt(10)},
			want:    "0",
		},
		{
			name: "no discount",
			items: []domain.OrderLineItem{
				{ItemCode: "A1", Name: "Apples", Quantity: 2},
				{ItemCode: "B1", Name: "Bread", Quantity: 3},
			},
			pricing: domain.OrderPricing{UnitPrice: decimal.NewFromInt(10)},
			want:    "50",
		},
		{
			name: "discount applied to whole order",
			items: []domain.OrderLineItem{
				{ItemCode: "A1", Name: "Apples", Quantity: 4},
			},
			pricing: domain.OrderPricing{UnitPrice: decimal.RequireFromString("2.50"), Discount: decimal.NewFromInt(10)},
			want:    "9",
		},
		{
			name: "full discount",
			items: []domain.OrderLineItem{
				{ItemCode: "A1", Name: "Apples", Quantity: 7},
			},
			pricing: domain.OrderPricing{UnitPrice: decimal.NewFromInt(3), Discount: decimal.NewFromInt(100)},
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := domain.Order{Items: tt.items, Pricing: tt.pricing}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(order.Total()), "got %s", order.Total())
		})
	}
}

func TestOrder_TotalIgnoresItemOrder(t *testing.T) {
	items := []domain.OrderLineItem{
		{ItemCode: "A", Name: "a", Quantity: 1},
		{ItemCode: "B", Name: "b", Quantity: 5},
		{ItemCode: "C", Name: "c", Quantity: 13},
		{ItemCode: "D", Name: "d", Quantity: 2},
	}
	pricing := domain.OrderPricing{UnitPrice: decimal.RequireFromString("3.33"), Discount: decimal.RequireFromString("12.5")}
	want := domain.OrderTotal(items, pricing)

	reversed := slices.Clone(items)
	slices.Reverse(reversed)
	assert.True(t, want.Equal(domain.OrderTotal(reversed, pricing)))

	rotated := append(slices.Clone(items[2:]), items[:2]...)
	assert.True(t, want.Equal(domain.OrderTotal(rotated, pricing)))
}
