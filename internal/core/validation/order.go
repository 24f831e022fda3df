package validation

import (
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var (
	orderRequired  = []string{"orderNumber", "supplierId", "items", "pricing", "deliveryDate", "paymentMethod"}
	lineItemFields = []string{"itemCode", "name", "quantity"}
)

// ValidateOrderCreate validates a new order. deliveryDate must be in the
// future; discount defaults to 0 and status to pending.
func (v *Validator) ValidateOrderCreate(in Input) (domain.Order, error) {
	r := newReader(in)
	r.require(orderRequired...)
	pricing := r.object("pricing")
	if r.present("pricing") {
		pricing.require("unitPrice")
	}
	items := r.objects("items")
	for _, item := range items {
		item.require(lineItemFields...)
	}
	if err := r.missingError(); err != nil {
		return domain.Order{}, err
	}

	o := domain.Order{
		OrderNumber: r.str("orderNumber"),
		SupplierID:  r.str("supplierId"),
		Items:       lineItems(items),
		Pricing: domain.OrderPricing{
			UnitPrice: pricing.number("unitPrice"),
			Discount:  pricing.number("discount"),
		},
		DeliveryDate:    r.date("deliveryDate"),
		Status:          domain.OrderStatus(r.str("status")),
		PaymentMethod:   domain.PaymentMethod(r.str("paymentMethod")),
		ShippingAddress: address(r.object("shippingAddress")),
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	v.future(r, "deliveryDate", o.DeliveryDate)
	if err := v.check(r, o); err != nil {
		return domain.Order{}, err
	}
	o.OrderNumber = strings.ToUpper(o.OrderNumber)
	return o, nil
}

// ValidateOrderPatch validates the fields supplied in an order update.
// Supplied items replace the whole list and must each be complete.
func (v *Validator) ValidateOrderPatch(in Input) (domain.OrderPatch, error) {
	r := newReader(in)
	r.forbidEmpty(orderRequired...)
	r.forbidEmpty("status")

	var items []*reader
	if r.present("items") {
		items = r.objects("items")
		for _, item := range items {
			item.require(lineItemFields...)
		}
	}
	if err := r.missingError(); err != nil {
		return domain.OrderPatch{}, err
	}

	p := domain.OrderPatch{
		OrderNumber:   r.optString("orderNumber"),
		SupplierID:    r.optString("supplierId"),
		DeliveryDate:  r.optDate("deliveryDate"),
		Status:        typedPtr[domain.OrderStatus](r.optString("status")),
		PaymentMethod: typedPtr[domain.PaymentMethod](r.optString("paymentMethod")),
	}
	if items != nil {
		list := lineItems(items)
		p.Items = &list
	}
	if r.present("pricing") {
		pricing := r.object("pricing")
		pricing.forbidEmpty("unitPrice")
		p.Pricing = &domain.OrderPricingPatch{
			UnitPrice: pricing.optDecimal("unitPrice"),
			Discount:  pricing.optDecimal("discount"),
		}
	}
	if r.present("shippingAddress") {
		p.ShippingAddress = addressPatch(r.object("shippingAddress"))
	}
	if err := v.check(r, p); err != nil {
		return domain.OrderPatch{}, err
	}
	upperPtr(p.OrderNumber)
	return p, nil
}

func lineItems(readers []*reader) []domain.OrderLineItem {
	items := make([]domain.OrderLineItem, len(readers))
	for i, item := range readers {
		items[i] = domain.OrderLineItem{
			ItemCode: item.str("itemCode"),
			Name:     item.str("name"),
			Quantity: item.integer("quantity"),
		}
	}
	return items
}

func address(r *reader) domain.Address {
	return domain.Address{
		Street:     r.str("street"),
		City:       r.str("city"),
		State:      r.str("state"),
		PostalCode: r.str("postalCode"),
		Country:    r.str("country"),
	}
}

func addressPatch(r *reader) *domain.AddressPatch {
	return &domain.AddressPatch{
		Street:     r.optString("street"),
		City:       r.optString("city"),
		State:      r.optString("state"),
		PostalCode: r.optString("postalCode"),
		Country:    r.optString("country"),
	}
}
