package validation_test

import (
	"testing"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetPatch_OnlySuppliedFields(t *testing.T) {
	p, err := newValidator().ValidateAssetPatch(validation.Input{"itemCode": "van-2", "usefulLifeYears": "12"})
	require.NoError(t, err)

	require.NotNil(t, p.ItemCode)
	assert.Equal(t, "VAN-2", *p.ItemCode)
	require.NotNil(t, p.UsefulLifeYears)
	assert.Equal(t, 12, *p.UsefulLifeYears)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.InitialValue)

	a := domain.Asset{ItemCode: "OLD", Name: "Van", UsefulLifeYears: 5}
	p.ApplyTo(&a)
	assert.Equal(t, "VAN-2", a.ItemCode)
	assert.Equal(t, "Van", a.Name)
	assert.Equal(t, 12, a.UsefulLifeYears)
}

func TestPatch_RejectsEmptyRequiredFields(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		run   func() error
		field string
	}{
		{"asset null name", func() error {
			_, err := v.ValidateAssetPatch(validation.Input{"name": nil})
			return err
		}, "name"},
		{"liability blank type", func() error {
			_, err := v.ValidateLiabilityPatch(validation.Input{"liabilityType": " "})
			return err
		}, "liabilityType"},
		{"income null amount", func() error {
			_, err := v.ValidateIncomePatch(validation.Input{"amount": nil})
			return err
		}, "amount"},
		{"expense blank date", func() error {
			_, err := v.ValidateExpensePatch(validation.Input{"date": ""})
			return err
		}, "date"},
		{"product blank barcode", func() error {
			_, err := v.ValidateProductPatch(validation.Input{"barcode": ""})
			return err
		}, "barcode"},
		{"order null pricing unit price", func() error {
			_, err := v.ValidateOrderPatch(validation.Input{"pricing": map[string]any{"unitPrice": nil}})
			return err
		}, "pricing.unitPrice"},
		{"supplier blank contact phone", func() error {
			_, err := v.ValidateSupplierPatch(validation.Input{"contact": map[string]any{"phone": ""}})
			return err
		}, "contact.phone"},
		{"promotion null code", func() error {
			_, err := v.ValidatePromotionPatch(validation.Input{"promotionCode": nil})
			return err
		}, "promotionCode"},
		{"customer blank city", func() error {
			_, err := v.ValidateCustomerProfile(validation.Input{"address": map[string]any{"city": ""}})
			return err
		}, "address.city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := violationsOf(t, tt.run())
			assert.Equal(t, []string{tt.field}, fieldsOf(verr))
			assert.Equal(t, tt.field+" cannot be empty", verr.Violations[0].Message)
		})
	}
}

func TestPatch_ValidatesSuppliedValues(t *testing.T) {
	v := newValidator()

	_, err := v.ValidateAssetPatch(validation.Input{"usefulLifeYears": num("0")})
	assert.Equal(t, []string{"usefulLifeYears"}, fieldsOf(violationsOf(t, err)))

	_, err = v.ValidateProductPatch(validation.Input{"barcode": "abc"})
	assert.Equal(t, []string{"barcode"}, fieldsOf(violationsOf(t, err)))

	_, err = v.ValidateOrderPatch(validation.Input{"items": []any{map[string]any{"itemCode": "A"}}})
	verr := violationsOf(t, err)
	assert.Equal(t, []string{"items[0].name", "items[0].quantity"}, fieldsOf(verr))

	_, err = v.ValidateSupplierPatch(validation.Input{"itemCategories": []any{"weapons"}})
	assert.Equal(t, []string{"itemCategories[0]"}, fieldsOf(violationsOf(t, err)))
}

func TestPatch_OptionalFieldsMayBeCleared(t *testing.T) {
	v := newValidator()

	p, err := v.ValidateProductPatch(validation.Input{"brand": "", "description": nil})
	require.NoError(t, err)
	require.NotNil(t, p.Brand)
	assert.Empty(t, *p.Brand)
	require.NotNil(t, p.Description)
	assert.Empty(t, *p.Description)

	s, err := v.ValidateSupplierPatch(validation.Input{"contact": map[string]any{"email": ""}})
	require.NoError(t, err)
	require.NotNil(t, s.Contact)
	assert.Nil(t, s.Contact.Phone)
	assert.Empty(t, *s.Contact.Email)
}

func TestPatch_Normalizes(t *testing.T) {
	v := newValidator()

	o, err := v.ValidateOrderPatch(validation.Input{
		"orderNumber": "po-9",
		"pricing":     map[string]any{"discount": num("15")},
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-9", *o.OrderNumber)
	require.NotNil(t, o.Pricing)
	assert.Nil(t, o.Pricing.UnitPrice)
	assert.True(t, decimal.NewFromInt(15).Equal(*o.Pricing.Discount))

	s, err := v.ValidateSupplierPatch(validation.Input{
		"supplierId": "sup02",
		"contact":    map[string]any{"email": "Orders@Acme.io"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP02", *s.SupplierID)
	assert.Equal(t, "orders@acme.io", *s.Contact.Email)

	pr, err := v.ValidatePromotionPatch(validation.Input{"promotionCode": "winter", "discount": num("0")})
	require.NoError(t, err)
	assert.Equal(t, "WINTER", *pr.PromotionCode)
	assert.True(t, pr.Discount.IsZero())

	price, err := v.ValidateProductPatch(validation.Input{"price": "3.333"})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("3.33").Equal(*price.Price))
}

func TestPromotionPatch_WindowCheckedAfterMerge(t *testing.T) {
	v := newValidator()

	current, err := v.ValidatePromotionCreate(promotionInput())
	require.NoError(t, err)

	p, err := v.ValidatePromotionPatch(validation.Input{"endDate": "2023-12-01"})
	require.NoError(t, err)

	p.ApplyTo(&current)
	assert.Error(t, validation.CheckPromotionWindow(current))
}
