package dto

import (
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderResponse is an order with its computed total. Listings also carry
// the referenced supplier's name and phone.
type OrderResponse struct {
	domain.Order
	Total    decimal.Decimal         `json:"total"`
	Supplier *domain.SupplierSummary `json:"supplier,omitempty"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{Order: *o, Total: o.Total()}
}

// ToListOrderResponse converts a slice of domain.Order to OrderResponse DTOs
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	return MapList(orders, ToOrderResponse)
}

// ToListOrderResponseWithSuppliers converts orders and attaches the supplier
// summary of each order found in suppliers.
func ToListOrderResponseWithSuppliers(orders []domain.Order, suppliers map[string]domain.SupplierSummary) []OrderResponse {
	out := ToListOrderResponse(orders)
	for i := range out {
		if summary, ok := suppliers[out[i].SupplierID]; ok {
			out[i].Supplier = &summary
		}
	}
	return out
}
