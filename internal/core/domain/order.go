package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of a purchase order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentMethod is how a supplier order is paid.
type PaymentMethod string

// OrderLineItem is one ordered item. Quantity is at least 1.
type OrderLineItem struct {
	ItemCode string `json:"itemCode" validate:"max=50"`
	Name     string `json:"name" validate:"max=100"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// OrderPricing holds the per-unit price and the single discount applied to the whole order.
type OrderPricing struct {
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"dgte=0"`
	Discount  decimal.Decimal `json:"discount" validate:"dgte=0,dlte=100"`
}

// Order is a purchase order placed with a supplier.
// SupplierID references a Supplier's ID; the order does not own the supplier.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber" validate:"max=30"`
	SupplierID      string          `json:"supplierId" validate:"uuid"`
	Items           []OrderLineItem `json:"items" validate:"min=1,dive"`
	Pricing         OrderPricing    `json:"pricing"`
	DeliveryDate    time.Time       `json:"deliveryDate"`
	Status          OrderStatus     `json:"status" validate:"oneof=pending processing shipped delivered cancelled"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" validate:"oneof=credit bank-transfer cash-on-delivery"`
	ShippingAddress Address         `json:"shippingAddress"`
	Timestamps
}

// Total is the derived order total: the sum over line items of
// quantity * unitPrice * (1 - discount/100). It is never persisted.
func (o Order) Total() decimal.Decimal {
	return OrderTotal(o.Items, o.Pricing)
}

// OrderTotal computes the order total for the given items and pricing.
func OrderTotal(items []OrderLineItem, pricing OrderPricing) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(pricing.Discount.Div(decimal.NewFromInt(100)))
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromInt(int64(item.Quantity)).Mul(pricing.UnitPrice).Mul(factor)
		total = total.Add(line)
	}
	return total
}

// OrderPricingPatch carries the pricing sub-fields supplied in an update.
type OrderPricingPatch struct {
	UnitPrice *decimal.Decimal `validate:"omitempty,dgte=0"`
	Discount  *decimal.Decimal `validate:"omitempty,dgte=0,dlte=100"`
}

// OrderPatch carries only the order fields supplied in an update.
// Items, when supplied, replace the whole item list.
type OrderPatch struct {
	OrderNumber     *string            `json:"orderNumber" validate:"omitempty,max=30"`
	SupplierID      *string            `json:"supplierId" validate:"omitempty,uuid"`
	Items           *[]OrderLineItem   `json:"items" validate:"omitempty,min=1,dive"`
	Pricing         *OrderPricingPatch `json:"pricing"`
	DeliveryDate    *time.Time         `json:"deliveryDate"`
	Status          *OrderStatus       `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentMethod   *PaymentMethod     `json:"paymentMethod" validate:"omitempty,oneof=credit bank-transfer cash-on-delivery"`
	ShippingAddress *AddressPatch      `json:"shippingAddress"`
}

// ApplyTo merges the patch into o.
func (p OrderPatch) ApplyTo(o *Order) {
	setIfPresent(&o.OrderNumber, p.OrderNumber)
	setIfPresent(&o.SupplierID, p.SupplierID)
	setIfPresent(&o.Items, p.Items)
	if p.Pricing != nil {
		setIfPresent(&o.Pricing.UnitPrice, p.Pricing.UnitPrice)
		setIfPresent(&o.Pricing.Discount, p.Pricing.Discount)
	}
	setIfPresent(&o.DeliveryDate, p.DeliveryDate)
	setIfPresent(&o.Status, p.Status)
	setIfPresent(&o.PaymentMethod, p.PaymentMethod)
	p.ShippingAddress.ApplyTo(&o.ShippingAddress)
}
