package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return fixedNow }))
}

func num(s string) json.Number { return json.Number(s) }

func violationsOf(t *testing.T, err error) *apperrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func fieldsOf(verr *apperrors.ValidationError) []string {
	out := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		out[i] = v.Field
	}
	return out
}

func messageFor(verr *apperrors.ValidationError, field string) string {
	for _, v := range verr.Violations {
		if v.Field == field {
			return v.Message
		}
	}
	return ""
}

func assetInput() validation.Input {
	return validation.Input{
		"itemCode":        "abc123",
		"name":            "Delivery van",
		"assetType":       "vehicle",
		"purchaseDate":    "2023-03-15",
		"initialValue":    num("25000"),
		"residualValue":   num("5000"),
		"usefulLifeYears": num("8"),
	}
}

func liabilityInput() validation.Input {
	return validation.Input{
		"itemCode":      "ln-01",
		"name":          "Bank loan",
		"liabilityType": "loan",
		"startDate":     "2023-01-01",
		"initialAmount": num("10000"),
		"interestRate":  num("4.5"),
		"termYears":     num("5"),
	}
}

func incomeInput() validation.Input {
	return validation.Input{
		"title":       "Weekly sales",
		"amount":      num("1250.75"),
		"category":    "sales",
		"description": "Counter sales for the week",
		"paymentType": "check",
		"date":        "2024-05-20",
	}
}

func productInput() validation.Input {
	return validation.Input{
		"name":       "Whole milk",
		"category":   "dairy",
		"price":      num("2.499"),
		"expiryDate": "2024-07-01",
		"barcode":    "012345678905",
	}
}

func orderInput(supplierID string) validation.Input {
	return validation.Input{
		"orderNumber": "po-1001",
		"supplierId":  supplierID,
		"items": []any{
			map[string]any{"itemCode": "MLK", "name": "Milk", "quantity": num("3")},
			map[string]any{"itemCode": "BRD", "name": "Bread", "quantity": "2"},
		},
		"pricing":       map[string]any{"unitPrice": num("4.00"), "discount": num("10")},
		"deliveryDate":  "2024-06-10T09:30",
		"paymentMethod": "credit",
	}
}

func supplierInput() validation.Input {
	return validation.Input{
		"supplierId":     "sup01",
		"name":           "Fresh Farms",
		"contact":        map[string]any{"phone": "+1 555-123-4567", "email": "Sales@FreshFarms.com"},
		"itemCategories": []any{"groceries", "household", "groceries"},
		"paymentTerms":   map[string]any{"method": "bank-transfer", "accountNumber": "ACC-42"},
	}
}

func promotionInput() validation.Input {
	return validation.Input{
		"promotionCode":  "summer24",
		"itemCode":       "MLK",
		"itemName":       "Milk",
		"mediaType":      "social",
		"targetAudience": []any{"new", "vip"},
		"startDate":      "2024-01-01",
		"endDate":        "2024-01-11",
		"originalPrice":  num("100"),
		"discount":       num("25"),
		"quantity":       num("0"),
	}
}

func customerInput() validation.Input {
	return validation.Input{
		"name":     "Jane Doe",
		"email":    "Jane.Doe@Example.com",
		"phone":    "5551234567",
		"password": "correct horse",
		"address": map[string]any{
			"street":  "1 Main St",
			"city":    "Springfield",
			"state":   "IL",
			"zipCode": "62701",
		},
	}
}

func feedbackInput() validation.Input {
	return validation.Input{
		"name":        "Sam",
		"email":       "sam@example.com",
		"phone":       "5550001111",
		"description": "The bakery shelf is often empty by noon.",
	}
}

func TestCreate_MissingFieldsAreNamed(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		input   validation.Input
		run     func(validation.Input) error
		missing []string
	}{
		{
			name:    "asset with absent, null and blank fields",
			input:   validation.Input{"itemCode": "A1", "name": nil, "assetType": "  ", "initialValue": num("0")},
			run:     func(in validation.Input) error { _, err := v.ValidateAssetCreate(in); return err },
			missing: []string{"name", "assetType", "purchaseDate", "residualValue", "usefulLifeYears"},
		},
		{
			name:    "liability",
			input:   validation.Input{"name": "Loan"},
			run:     func(in validation.Input) error { _, err := v.ValidateLiabilityCreate(in); return err },
			missing: []string{"itemCode", "liabilityType", "startDate", "initialAmount", "interestRate", "termYears"},
		},
		{
			name:    "income",
			input:   validation.Input{"title": "Sales", "amount": num("10")},
			run:     func(in validation.Input) error { _, err := v.ValidateIncomeCreate(in); return err },
			missing: []string{"category", "description", "paymentType", "date"},
		},
		{
			name:    "expense",
			input:   validation.Input{},
			run:     func(in validation.Input) error { _, err := v.ValidateExpenseCreate(in); return err },
			missing: []string{"title", "amount", "category", "description", "paymentType", "date"},
		},
		{
			name:    "product",
			input:   validation.Input{"name": "Milk", "category": "dairy"},
			run:     func(in validation.Input) error { _, err := v.ValidateProductCreate(in); return err },
			missing: []string{"price", "expiryDate", "barcode"},
		},
		{
			name: "order with incomplete pricing and item",
			input: validation.Input{
				"orderNumber": "PO1", "supplierId": "x",
				"items":   []any{map[string]any{"itemCode": "A", "name": "a"}},
				"pricing": map[string]any{"discount": num("5")},
			},
			run:     func(in validation.Input) error { _, err := v.ValidateOrderCreate(in); return err },
			missing: []string{"deliveryDate", "paymentMethod", "pricing.unitPrice", "items[0].quantity"},
		},
		{
			name:    "supplier with empty contact",
			input:   validation.Input{"supplierId": "S1", "name": "S", "contact": map[string]any{}, "itemCategories": []any{"clothing"}},
			run:     func(in validation.Input) error { _, err := v.ValidateSupplierCreate(in); return err },
			missing: []string{"paymentTerms", "contact.phone"},
		},
		{
			name:    "promotion",
			input:   validation.Input{"promotionCode": "P1", "discount": num("0"), "quantity": num("0")},
			run:     func(in validation.Input) error { _, err := v.ValidatePromotionCreate(in); return err },
			missing: []string{"itemCode", "itemName", "mediaType", "targetAudience", "startDate", "endDate", "originalPrice"},
		},
		{
			name:    "customer with partial address",
			input:   validation.Input{"name": "J", "email": "j@x.io", "phone": "5551234567", "address": map[string]any{"street": "1 Main", "zipCode": ""}},
			run:     func(in validation.Input) error { _, err := v.ValidateCustomerRegistration(in); return err },
			missing: []string{"password", "address.city", "address.state", "address.zipCode"},
		},
		{
			name:    "inquiry",
			input:   validation.Input{"email": "a@b.co"},
			run:     func(in validation.Input) error { _, err := v.ValidateInquiryCreate(in); return err },
			missing: []string{"name", "phone", "description"},
		},
		{
			name:    "suggestion",
			input:   validation.Input{"name": "S", "email": "a@b.co", "phone": "5550001111"},
			run:     func(in validation.Input) error { _, err := v.ValidateSuggestionCreate(in); return err },
			missing: []string{"description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := violationsOf(t, tt.run(tt.input))
			assert.Equal(t, tt.missing, fieldsOf(verr))
			assert.Contains(t, verr.Error(), "Missing required fields: ")
			for _, f := range tt.missing {
				assert.Contains(t, verr.Error(), f)
			}
		})
	}
}

func TestAsset_UsefulLifeBounds(t *testing.T) {
	v := newValidator()

	tests := []struct {
		years string
		ok    bool
	}{
		{"0", false},
		{"1", true},
		{"100", true},
		{"101", false},
	}

	for _, tt := range tests {
		t.Run(tt.years, func(t *testing.T) {
			in := assetInput()
			in["usefulLifeYears"] = num(tt.years)
			_, err := v.ValidateAssetCreate(in)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			verr := violationsOf(t, err)
			assert.Equal(t, []string{"usefulLifeYears"}, fieldsOf(verr))
		})
	}
}

func TestAsset_NormalizesItemCode(t *testing.T) {
	a, err := newValidator().ValidateAssetCreate(assetInput())
	require.NoError(t, err)

	assert.Equal(t, "ABC123", a.ItemCode)
	assert.Equal(t, "Delivery van", a.Name)
	assert.Equal(t, domain.AssetVehicle, a.AssetType)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), a.PurchaseDate)
	assert.True(t, decimal.NewFromInt(25000).Equal(a.InitialValue))
	assert.Equal(t, 8, a.UsefulLifeYears)
}

func TestAsset_CollectsEveryViolation(t *testing.T) {
	in := assetInput()
	in["name"] = "X"
	in["assetType"] = "boat"
	in["initialValue"] = num("-1")
	in["usefulLifeYears"] = "eight"

	verr := violationsOf(t, func() error { _, err := newValidator().ValidateAssetCreate(in); return err }())

	assert.ElementsMatch(t, []string{"name", "assetType", "initialValue", "usefulLifeYears"}, fieldsOf(verr))
	assert.Equal(t, "usefulLifeYears must be a number", messageFor(verr, "usefulLifeYears"))
	assert.Contains(t, messageFor(verr, "assetType"), "'boat'")
	assert.Contains(t, messageFor(verr, "assetType"), "equipment, property, vehicle, other")
}

func TestAsset_RejectsFractionalYears(t *testing.T) {
	in := assetInput()
	in["usefulLifeYears"] = num("2.5")

	_, err := newValidator().ValidateAssetCreate(in)
	verr := violationsOf(t, err)
	assert.Equal(t, "usefulLifeYears must be a whole number", messageFor(verr, "usefulLifeYears"))
}

func TestLiability_ZeroAmountIsPresent(t *testing.T) {
	in := liabilityInput()
	in["initialAmount"] = num("0")
	in["interestRate"] = "0"

	l, err := newValidator().ValidateLiabilityCreate(in)
	require.NoError(t, err)
	assert.True(t, l.InitialAmount.IsZero())
	assert.Equal(t, "LN-01", l.ItemCode)
}

func TestLiability_Ranges(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		field string
		value any
		ok    bool
	}{
		{"interest at upper bound", "interestRate", num("100"), true},
		{"interest above bound", "interestRate", num("100.01"), false},
		{"interest a hair above bound", "interestRate", "100.00000000000000001", false},
		{"amount a hair below zero", "initialAmount", num("-0.00000000000000001"), false},
		{"negative interest", "interestRate", num("-0.5"), false},
		{"term lower bound", "termYears", num("1"), true},
		{"term upper bound", "termYears", num("30"), true},
		{"term above bound", "termYears", num("31"), false},
		{"negative amount", "initialAmount", num("-1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := liabilityInput()
			in[tt.field] = tt.value
			_, err := v.ValidateLiabilityCreate(in)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{tt.field}, fieldsOf(violationsOf(t, err)))
		})
	}
}

func TestDecimalBounds_AreExact(t *testing.T) {
	v := newValidator()

	in := liabilityInput()
	in["interestRate"] = num("100.00000000000000001")
	_, err := v.ValidateLiabilityCreate(in)
	assert.Equal(t, "interestRate cannot exceed 100", messageFor(violationsOf(t, err), "interestRate"))

	in = incomeInput()
	in["amount"] = num("0.000000000000000000001")
	_, err = v.ValidateIncomeCreate(in)
	assert.NoError(t, err)

	patch, err := v.ValidatePromotionPatch(validation.Input{"discount": "100.000000000000000001"})
	assert.Nil(t, patch.Discount)
	assert.Equal(t, []string{"discount"}, fieldsOf(violationsOf(t, err)))
}

func TestIncomeAndExpense_PaymentTypes(t *testing.T) {
	v := newValidator()

	income, err := v.ValidateIncomeCreate(incomeInput())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCheck, income.PaymentType)

	_, err = v.ValidateExpenseCreate(incomeInput())
	verr := violationsOf(t, err)
	assert.Equal(t, []string{"paymentType"}, fieldsOf(verr))
}

func TestIncome_AmountMustBePositive(t *testing.T) {
	in := incomeInput()
	in["amount"] = num("0")

	_, err := newValidator().ValidateIncomeCreate(in)
	verr := violationsOf(t, err)
	assert.Equal(t, "amount must be greater than 0", messageFor(verr, "amount"))
}

func TestProduct_Create(t *testing.T) {
	v := newValidator()

	p, err := v.ValidateProductCreate(productInput())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.50").Equal(p.Price))
	assert.Equal(t, domain.StorageRoomTemperature, p.StorageCondition)
	assert.Zero(t, p.Quantity)
	assert.Nil(t, p.NutritionalInfo)

	in := productInput()
	in["storageCondition"] = "refrigerated"
	in["nutritionalInfo"] = map[string]any{"calories": num("150"), "allergens": []any{"milk"}}
	p, err = v.ValidateProductCreate(in)
	require.NoError(t, err)
	require.NotNil(t, p.NutritionalInfo)
	assert.Equal(t, []string{"milk"}, p.NutritionalInfo.Allergens)
	assert.True(t, decimal.NewFromInt(150).Equal(*p.NutritionalInfo.Calories))
}

func TestProduct_Rules(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		field string
		value any
	}{
		{"price rounds below a cent", "price", num("0.004")},
		{"short barcode", "barcode", "12345"},
		{"letters in barcode", "barcode", "01234567890A"},
		{"expiry in the past", "expiryDate", "2024-05-31"},
		{"unknown storage", "storageCondition", "warm"},
		{"bad category", "category", "toys"},
		{"negative quantity", "quantity", num("-1")},
		{"negative calories", "nutritionalInfo", map[string]any{"calories": num("-5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := productInput()
			in[tt.field] = tt.value
			_, err := v.ValidateProductCreate(in)
			verr := violationsOf(t, err)
			require.Len(t, verr.Violations, 1)
			assert.Contains(t, verr.Violations[0].Field, tt.field)
		})
	}
}

func TestProduct_BarcodeIsNotCaseFolded(t *testing.T) {
	in := productInput()
	in["barcode"] = " 4006381333931 "

	p, err := newValidator().ValidateProductCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "4006381333931", p.Barcode)
}

func TestOrder_Create(t *testing.T) {
	const supplierID = "6f1c2a7e-9a4b-4c47-8d3e-0b6c1f2a9e11"

	o, err := newValidator().ValidateOrderCreate(orderInput(supplierID))
	require.NoError(t, err)

	assert.Equal(t, "PO-1001", o.OrderNumber)
	assert.Equal(t, supplierID, o.SupplierID)
	assert.Equal(t, domain.OrderPending, o.Status)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 2, o.Items[1].Quantity)
	assert.True(t, decimal.RequireFromString("18").Equal(o.Total()))
}

func TestOrder_Rules(t *testing.T) {
	const supplierID = "6f1c2a7e-9a4b-4c47-8d3e-0b6c1f2a9e11"
	v := newValidator()

	tests := []struct {
		name   string
		mutate func(validation.Input)
		field  string
	}{
		{"zero quantity", func(in validation.Input) {
			in["items"] = []any{map[string]any{"itemCode": "A", "name": "a", "quantity": num("0")}}
		}, "items[0].quantity"},
		{"empty item list", func(in validation.Input) { in["items"] = []any{} }, "items"},
		{"discount over 100", func(in validation.Input) {
			in["pricing"] = map[string]any{"unitPrice": num("1"), "discount": num("101")}
		}, "pricing.discount"},
		{"delivery in the past", func(in validation.Input) { in["deliveryDate"] = "2024-01-01" }, "deliveryDate"},
		{"bad payment method", func(in validation.Input) { in["paymentMethod"] = "barter" }, "paymentMethod"},
		{"supplier reference is not an id", func(in validation.Input) { in["supplierId"] = "SUP01" }, "supplierId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := orderInput(supplierID)
			tt.mutate(in)
			_, err := v.ValidateOrderCreate(in)
			assert.Equal(t, []string{tt.field}, fieldsOf(violationsOf(t, err)))
		})
	}
}

func TestSupplier_Create(t *testing.T) {
	s, err := newValidator().ValidateSupplierCreate(supplierInput())
	require.NoError(t, err)

	assert.Equal(t, "SUP01", s.SupplierID)
	assert.Equal(t, "sales@freshfarms.com", s.Contact.Email)
	assert.Equal(t, []domain.ItemCategory{"groceries", "household"}, s.ItemCategories)
	assert.Equal(t, domain.SupplierActive, s.Status)
}

func TestSupplier_Rules(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name   string
		mutate func(validation.Input)
		field  string
	}{
		{"bad phone", func(in validation.Input) { in["contact"] = map[string]any{"phone": "call me"} }, "contact.phone"},
		{"bad email", func(in validation.Input) {
			in["contact"] = map[string]any{"phone": "555-1234", "email": "nope"}
		}, "contact.email"},
		{"unknown category", func(in validation.Input) { in["itemCategories"] = []any{"groceries", "toys"} }, "itemCategories[1]"},
		{"no categories", func(in validation.Input) { in["itemCategories"] = []any{} }, "itemCategories"},
		{"bad payment method", func(in validation.Input) { in["paymentTerms"] = map[string]any{"method": "iou"} }, "paymentTerms.method"},
		{"long supplier id", func(in validation.Input) { in["supplierId"] = "SUPPLIER-0001" }, "supplierId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := supplierInput()
			tt.mutate(in)
			_, err := v.ValidateSupplierCreate(in)
			assert.Equal(t, []string{tt.field}, fieldsOf(violationsOf(t, err)))
		})
	}
}

func TestPromotion_Create(t *testing.T) {
	p, err := newValidator().ValidatePromotionCreate(promotionInput())
	require.NoError(t, err)

	assert.Equal(t, "SUMMER24", p.PromotionCode)
	assert.Equal(t, domain.PromotionDraft, p.Status)
	assert.Equal(t, []domain.Audience{"new", "vip"}, p.TargetAudience)
	assert.Equal(t, 10, p.DurationDays())
	assert.True(t, decimal.RequireFromString("75.00").Equal(p.DiscountedPrice()))
}

func TestPromotion_WindowMustBeForward(t *testing.T) {
	v := newValidator()

	for _, end := range []string{"2024-01-01", "2023-12-31"} {
		t.Run(end, func(t *testing.T) {
			in := promotionInput()
			in["endDate"] = end
			_, err := v.ValidatePromotionCreate(in)
			verr := violationsOf(t, err)
			assert.Equal(t, []string{"startDate"}, fieldsOf(verr))
		})
	}
}

func TestCheckPromotionWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validation.CheckPromotionWindow(domain.Promotion{StartDate: start, EndDate: start.Add(time.Hour)}))

	err := validation.CheckPromotionWindow(domain.Promotion{StartDate: start, EndDate: start})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCustomer_Registration(t *testing.T) {
	reg, err := newValidator().ValidateCustomerRegistration(customerInput())
	require.NoError(t, err)

	c := reg.Customer
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, domain.RoleCustomer, c.Role)
	assert.True(t, c.IsActive)
	assert.Equal(t, fixedNow, c.MembershipDate)
	assert.Equal(t, "correct horse", reg.Password)
	assert.Empty(t, c.PasswordHash)
}

func TestCustomer_RegistrationRules(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name   string
		mutate func(validation.Input)
		field  string
	}{
		{"short password", func(in validation.Input) { in["password"] = "short" }, "password"},
		{"nine digit phone", func(in validation.Input) { in["phone"] = "555123456" }, "phone"},
		{"bad email", func(in validation.Input) { in["email"] = "jane@" }, "email"},
		{"bad zip", func(in validation.Input) {
			in["address"] = map[string]any{"street": "1 Main", "city": "X", "state": "Y", "zipCode": "ABCDE"}
		}, "address.zipCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := customerInput()
			tt.mutate(in)
			_, err := v.ValidateCustomerRegistration(in)
			assert.Equal(t, []string{tt.field}, fieldsOf(violationsOf(t, err)))
		})
	}
}

func TestLogin(t *testing.T) {
	v := newValidator()

	creds, err := v.ValidateLogin(validation.Input{"email": " Jane@Example.com ", "password": " pass word "})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", creds.Email)
	assert.Equal(t, " pass word ", creds.Password)

	_, err = v.ValidateLogin(validation.Input{"email": "jane@example.com"})
	assert.Equal(t, []string{"password"}, fieldsOf(violationsOf(t, err)))
}

func TestProfileImage(t *testing.T) {
	v := newValidator()

	img, err := v.ValidateProfileImage(validation.Input{"profileImage": "https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", img)

	_, err = v.ValidateProfileImage(validation.Input{"profileImage": "not a url"})
	assert.Equal(t, []string{"profileImage"}, fieldsOf(violationsOf(t, err)))
}

func TestFeedback_Create(t *testing.T) {
	v := newValidator()

	inq, err := v.ValidateInquiryCreate(feedbackInput())
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryGeneral, inq.Type)
	assert.Equal(t, domain.InquiryOpen, inq.Status)

	in := feedbackInput()
	in["type"] = "PRAISE"
	_, err = v.ValidateInquiryCreate(in)
	assert.Equal(t, []string{"type"}, fieldsOf(violationsOf(t, err)))

	s, err := v.ValidateSuggestionCreate(feedbackInput())
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionPending, s.Status)
	assert.Equal(t, fixedNow, s.SubmittedDate)

	in = feedbackInput()
	in["description"] = "too short"
	_, err = v.ValidateSuggestionCreate(in)
	assert.Equal(t, []string{"description"}, fieldsOf(violationsOf(t, err)))
}

func TestStatusUpdates(t *testing.T) {
	v := newValidator()

	st, err := v.ValidateInquiryStatus(validation.Input{"status": "CLOSED"})
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryClosed, st)

	_, err = v.ValidateInquiryStatus(validation.Input{"status": "ARCHIVED"})
	verr := violationsOf(t, err)
	assert.Contains(t, messageFor(verr, "status"), "'ARCHIVED'")

	ss, err := v.ValidateSuggestionStatus(validation.Input{"status": "ARCHIVED"})
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionArchived, ss)

	_, err = v.ValidateSuggestionStatus(validation.Input{})
	assert.Equal(t, []string{"status"}, fieldsOf(violationsOf(t, err)))
}
