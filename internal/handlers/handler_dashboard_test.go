package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/dto"
	"github.com/SscSPs/biz_records_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, fresh bool) (*domain.Summary, error) {
	args := m.Called(ctx, fresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDashboardService
	production  bool
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockDashboardService)

	cfg := testConfig()
	cfg.IsProduction = s.production
	s.router = gin.New()
	err := handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{Dashboard: s.mockService}, validation.New())
	s.Require().NoError(err)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockService.AssertExpectations(s.T())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *DashboardHandlerTestSuite) TestGetSummary_Success() {
	summary := &domain.Summary{
		ProductCount:  3,
		AssetCount:    1,
		TotalIncome:   decimal.RequireFromString("300.50"),
		TotalExpenses: decimal.RequireFromString("75"),
		NetWorth:      decimal.RequireFromString("600"),
		GeneratedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	s.mockService.On("Summary", mock.Anything, false).Return(summary, nil).Once()

	w := s.get("/api/dashboard/summary")
	s.Equal(http.StatusOK, w.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(3.0, body.Data["productCount"])
	s.Equal(300.5, body.Data["totalIncome"])
	s.Equal(600.0, body.Data["netWorth"])
}

func (s *DashboardHandlerTestSuite) TestGetSummary_FreshBypassesCache() {
	s.mockService.On("Summary", mock.Anything, true).Return(&domain.Summary{}, nil).Once()

	w := s.get("/api/dashboard/summary?fresh=true")
	s.Equal(http.StatusOK, w.Code)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_ServiceError() {
	s.mockService.On("Summary", mock.Anything, false).Return(nil, errors.New("connection refused")).Once()

	w := s.get("/api/dashboard/summary")
	s.Equal(http.StatusInternalServerError, w.Code)

	var body dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("Error building dashboard summary", body.Message)
	s.Equal("connection refused", body.Error)
}

func TestGetSummary_ProductionHidesCause(t *testing.T) {
	s := &DashboardHandlerTestSuite{production: true}
	s.SetT(t)
	s.SetupTest()
	s.mockService.On("Summary", mock.Anything, false).Return(nil, errors.New("connection refused")).Once()

	w := s.get("/api/dashboard/summary")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "connection refused")
	s.TearDownTest()
}
