package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/adapters/database/memory"
	"github.com/SscSPs/biz_records_app/internal/core/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/handlers"
	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/SscSPs/biz_records_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "handler-test-secret",
		JWTIssuer:         "handler-test",
		JWTExpiryDuration: time.Hour,
		LoginRateLimit:    "100-M",
		RequestTimeout:    5 * time.Second,
	}
}

// newTestRouter wires the real services over an in-memory store.
func newTestRouter(cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	svcs := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), nil)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	v := validation.New(validation.WithClock(func() time.Time { return fixedNow }))
	if err := handlers.RegisterRoutes(r, cfg, svcs, v); err != nil {
		return nil, err
	}
	return r, nil
}

type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	r, err := newTestRouter(testConfig())
	s.Require().NoError(err)
	s.router = r
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path string, body any, token string) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &parsed), w.Body.String())
	}
	return w, parsed
}

func data(body map[string]any) map[string]any {
	d, _ := body["data"].(map[string]any)
	return d
}

func detailFields(body map[string]any) []string {
	details, _ := body["details"].([]any)
	out := make([]string, 0, len(details))
	for _, d := range details {
		if m, ok := d.(map[string]any); ok {
			out = append(out, m["field"].(string))
		}
	}
	return out
}

func assetBody() map[string]any {
	return map[string]any{
		"itemCode":        "abc123",
		"name":            "Delivery van",
		"assetType":       "vehicle",
		"purchaseDate":    "2023-03-15",
		"initialValue":    25000,
		"residualValue":   5000,
		"usefulLifeYears": 8,
	}
}

func supplierBody(code string) map[string]any {
	return map[string]any{
		"supplierId":     code,
		"name":           "Fresh Farms",
		"contact":        map[string]any{"phone": "+1 555-123-4567"},
		"itemCategories": []any{"groceries"},
		"paymentTerms":   map[string]any{"method": "bank-transfer"},
	}
}

func orderBody(number, supplierID string) map[string]any {
	return map[string]any{
		"orderNumber": number,
		"supplierId":  supplierID,
		"items": []any{
			map[string]any{"itemCode": "MLK", "name": "Milk", "quantity": 3},
			map[string]any{"itemCode": "BRD", "name": "Bread", "quantity": 2},
		},
		"pricing":       map[string]any{"unitPrice": 4.00, "discount": 10},
		"deliveryDate":  "2024-06-10",
		"paymentMethod": "credit",
	}
}

func customerBody(email string) map[string]any {
	return map[string]any{
		"name":     "Jane Doe",
		"email":    email,
		"phone":    "5551234567",
		"password": "correct horse",
		"address":  map[string]any{"street": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701"},
	}
}

func feedbackBody() map[string]any {
	return map[string]any{
		"name":        "Sam",
		"email":       "sam@example.com",
		"phone":       "5550001111",
		"description": "The bakery shelf is often empty by noon.",
		"type":        "COMPLAINT",
	}
}

func (s *RouterTestSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *RouterTestSuite) TestAssetLifecycle() {
	w, body := s.do(http.MethodPost, "/api/assets", assetBody(), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("Asset created successfully", body["message"])
	created := data(body)
	s.Equal("ABC123", created["itemCode"])
	s.Equal(25000.0, created["initialValue"])
	id := created["id"].(string)

	w, body = s.do(http.MethodGet, "/api/assets", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(1.0, body["count"])

	w, body = s.do(http.MethodPut, "/api/assets/"+id, map[string]any{"name": "Refrigerated van"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("Refrigerated van", data(body)["name"])
	s.Equal("ABC123", data(body)["itemCode"])

	w, body = s.do(http.MethodDelete, "/api/assets/"+id, nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(id, data(body)["id"])

	w, body = s.do(http.MethodGet, "/api/assets/"+id, nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Asset not found", body["message"])
}

func (s *RouterTestSuite) TestValidationErrorsAreReported() {
	w, body := s.do(http.MethodPost, "/api/assets", map[string]any{"name": "Van"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(body["message"], "Missing required fields")
	s.Contains(detailFields(body), "itemCode")
	s.NotContains(detailFields(body), "name")

	bad := assetBody()
	bad["usefulLifeYears"] = 0
	w, body = s.do(http.MethodPost, "/api/assets", bad, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal([]string{"usefulLifeYears"}, detailFields(body))

	w, _ = s.do(http.MethodPut, "/api/assets/"+uuid.NewString(), map[string]any{"name": ""}, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestMalformedRequests() {
	w, body := s.do(http.MethodPost, "/api/incomes", "{not json", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(body["message"], "Invalid request body")

	w, _ = s.do(http.MethodPost, "/api/incomes", "[1, 2]", "")
	s.Equal(http.StatusBadRequest, w.Code)

	w, body = s.do(http.MethodGet, "/api/expenses?limit=-1", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("limit must be a non-negative integer", body["message"])

	w, _ = s.do(http.MethodGet, "/api/expenses?sort=sideways", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterTestSuite) TestListPagination() {
	for _, title := range []string{"Monday", "Tuesday", "Wednesday"} {
		w, _ := s.do(http.MethodPost, "/api/expenses", map[string]any{
			"title": title, "amount": 10, "category": "supplies",
			"description": "Shop supplies", "paymentType": "cash", "date": "2024-05-20",
		}, "")
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w, body := s.do(http.MethodGet, "/api/expenses?limit=2&offset=0", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(2.0, body["count"])

	w, body = s.do(http.MethodGet, "/api/expenses?limit=2&offset=2", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(1.0, body["count"])
}

func (s *RouterTestSuite) TestOrderReferencesSupplier() {
	w, body := s.do(http.MethodPost, "/api/orders", orderBody("po-1", uuid.NewString()), "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(detailFields(body), "supplierId")

	w, body = s.do(http.MethodPost, "/api/suppliers", supplierBody("sup01"), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	supplierID := data(body)["id"].(string)

	w, body = s.do(http.MethodPost, "/api/orders", orderBody("po-1", supplierID), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	order := data(body)
	s.Equal("PO-1", order["orderNumber"])
	s.InDelta(18.0, order["total"], 1e-9)
	s.Equal("pending", order["status"])
	s.Nil(order["supplier"])

	w, body = s.do(http.MethodGet, "/api/orders", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	listed := body["data"].([]any)[0].(map[string]any)
	s.Equal(map[string]any{"name": "Fresh Farms", "phone": "+1 555-123-4567"}, listed["supplier"])

	w, body = s.do(http.MethodPost, "/api/orders", orderBody("PO-1", supplierID), "")
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(body["message"], "already exists")

	w, body = s.do(http.MethodDelete, "/api/suppliers/"+supplierID, nil, "")
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(body["message"], "still referenced")

	w, body = s.do(http.MethodPut, "/api/orders/"+order["id"].(string), map[string]any{"pricing": map[string]any{"discount": 0}}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.InDelta(20.0, data(body)["total"], 1e-9)
}

func (s *RouterTestSuite) TestDuplicateSupplierCode() {
	w, _ := s.do(http.MethodPost, "/api/suppliers", supplierBody("sup01"), "")
	s.Require().Equal(http.StatusCreated, w.Code)

	w, body := s.do(http.MethodPost, "/api/suppliers", supplierBody("SUP01"), "")
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(body["message"], "SUP01")
}

func (s *RouterTestSuite) TestPromotionByCode() {
	promo := map[string]any{
		"promotionCode":  "summer24",
		"itemCode":       "MLK",
		"itemName":       "Milk",
		"mediaType":      "social",
		"targetAudience": []any{"new", "vip"},
		"startDate":      "2024-01-01",
		"endDate":        "2024-01-11",
		"originalPrice":  100,
		"discount":       25,
		"quantity":       0,
	}
	w, body := s.do(http.MethodPost, "/api/promotions", promo, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("SUMMER24", data(body)["promotionCode"])

	for _, code := range []string{"SUMMER24", "summer24"} {
		w, body = s.do(http.MethodGet, "/api/promotions/"+code, nil, "")
		s.Require().Equal(http.StatusOK, w.Code)
		s.Equal(75.0, data(body)["discountedPrice"])
		s.Equal(10.0, data(body)["durationDays"])
	}

	w, body = s.do(http.MethodPut, "/api/promotions/summer24", map[string]any{"endDate": "2023-12-01"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(detailFields(body), "startDate")

	w, _ = s.do(http.MethodDelete, "/api/promotions/Summer24", nil, "")
	s.Equal(http.StatusOK, w.Code)

	w, body = s.do(http.MethodGet, "/api/promotions/summer24", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Promotion not found", body["message"])
}

func (s *RouterTestSuite) TestCustomerRegistrationAndSelfService() {
	w, body := s.do(http.MethodPost, "/api/customers", customerBody("Jane@Example.com"), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.NotContains(w.Body.String(), "password")
	customer := data(body)
	s.Equal("jane@example.com", customer["email"])
	s.Equal("CUSTOMER", customer["role"])
	id := customer["id"].(string)

	w, _ = s.do(http.MethodPost, "/api/customers", customerBody("jane@example.com"), "")
	s.Equal(http.StatusConflict, w.Code)

	w, body = s.do(http.MethodPost, "/api/customers/login", map[string]any{"email": "jane@example.com", "password": "wrong password"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid credentials", body["message"])

	w, body = s.do(http.MethodPost, "/api/customers/login", map[string]any{"email": "nobody@example.com", "password": "correct horse"}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid credentials", body["message"])

	w, body = s.do(http.MethodPost, "/api/customers/login", map[string]any{"email": "JANE@example.com", "password": "correct horse"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	token, _ := body["token"].(string)
	s.Require().NotEmpty(token)
	s.Equal(id, data(body)["id"])

	w, _ = s.do(http.MethodGet, "/api/customers/"+id, nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodGet, "/api/customers/"+id, nil, token)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Jane Doe", data(body)["name"])

	w, _ = s.do(http.MethodGet, "/api/customers/"+uuid.NewString(), nil, token)
	s.Equal(http.StatusForbidden, w.Code)

	w, body = s.do(http.MethodPut, "/api/customers/"+id, map[string]any{"address": map[string]any{"city": "Shelbyville"}}, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	address := data(body)["address"].(map[string]any)
	s.Equal("Shelbyville", address["city"])
	s.Equal("1 Main St", address["street"])

	w, body = s.do(http.MethodPut, "/api/customers/"+id+"/profile-image", map[string]any{"profileImage": "https://cdn.example.com/jane.png"}, token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("https://cdn.example.com/jane.png", data(body)["profileImage"])

	w, body = s.do(http.MethodGet, "/api/customers", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(1.0, body["count"])

	w, _ = s.do(http.MethodDelete, "/api/customers/"+id, nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestInquiryAndSuggestionFlow() {
	w, body := s.do(http.MethodPost, "/api/inquiries", feedbackBody(), "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	inquiry := data(body)
	publicID := inquiry["inquiryId"].(string)
	s.Regexp(`^[0-9a-f]{24}$`, publicID)
	s.Equal("OPEN", inquiry["status"])
	s.NotEmpty(inquiry["formattedDate"])

	w, body = s.do(http.MethodPut, "/api/inquiries/"+publicID+"/status", map[string]any{"status": "RESOLVED"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("RESOLVED", data(body)["status"])

	w, body = s.do(http.MethodPut, "/api/inquiries/"+publicID+"/status", map[string]any{"status": "DONE"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(detailFields(body), "status")

	w, _ = s.do(http.MethodGet, "/api/inquiries/"+inquiry["id"].(string), nil, "")
	s.Equal(http.StatusNotFound, w.Code)

	suggestion := feedbackBody()
	delete(suggestion, "type")
	w, body = s.do(http.MethodPost, "/api/suggestions", suggestion, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suggestionID := data(body)["suggestionId"].(string)
	s.Equal("PENDING", data(body)["status"])
	s.Equal("June 1, 2024", data(body)["formattedDate"])

	w, body = s.do(http.MethodPut, "/api/suggestions/"+suggestionID+"/status", map[string]any{"status": "IMPLEMENTED"}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("IMPLEMENTED", data(body)["status"])

	w, _ = s.do(http.MethodDelete, "/api/suggestions/"+suggestionID, nil, "")
	s.Equal(http.StatusOK, w.Code)

	w, body = s.do(http.MethodGet, "/api/suggestions", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(0.0, body["count"])
}

func (s *RouterTestSuite) TestDashboardSummary() {
	w, body := s.do(http.MethodGet, "/api/dashboard/summary", nil, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(0.0, data(body)["netWorth"])
	s.Equal(0.0, data(body)["productCount"])

	w, _ = s.do(http.MethodPost, "/api/assets", assetBody(), "")
	s.Require().Equal(http.StatusCreated, w.Code)
	w, _ = s.do(http.MethodPost, "/api/liabilities", map[string]any{
		"itemCode": "ln-01", "name": "Bank loan", "liabilityType": "loan", "startDate": "2023-01-01",
		"initialAmount": 10000, "interestRate": 4.5, "termYears": 5,
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	w, _ = s.do(http.MethodPost, "/api/incomes", map[string]any{
		"title": "Weekly sales", "amount": 1250.75, "category": "sales",
		"description": "Counter sales", "paymentType": "check", "date": "2024-05-20",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w, body = s.do(http.MethodGet, "/api/dashboard/summary?fresh=true", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)
	summary := data(body)
	s.Equal(15000.0, summary["netWorth"])
	s.Equal(1250.75, summary["totalIncome"])
	s.Equal(0.0, summary["totalExpenses"])
	s.Equal(1.0, summary["assetCount"])
	s.Equal(1.0, summary["liabilityCount"])

	w, _ = s.do(http.MethodGet, "/api/dashboard/summary?fresh=maybe", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "2-M"
	r, err := newTestRouter(cfg)
	if err != nil {
		t.Fatal(err)
	}

	status := func() int {
		raw, _ := json.Marshal(map[string]any{"email": "jane@example.com", "password": "whatever1"})
		req := httptest.NewRequest(http.MethodPost, "/api/customers/login", bytes.NewReader(raw))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if got := status(); got != http.StatusUnauthorized {
		t.Fatalf("first attempt: got %d", got)
	}
	if got := status(); got != http.StatusUnauthorized {
		t.Fatalf("second attempt: got %d", got)
	}
	if got := status(); got != http.StatusTooManyRequests {
		t.Fatalf("third attempt: got %d, want 429", got)
	}
}

func TestRegisterRoutes_RejectsBadRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginRateLimit = "lots"
	if _, err := newTestRouter(cfg); err == nil {
		t.Fatal("expected an error for an unparsable rate")
	}
}
