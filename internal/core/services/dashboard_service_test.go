package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/adapters/database/memory"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	cache   *MockSummaryCache
	service portssvc.DashboardSvc
	now     time.Time
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	ctx := context.Background()
	store := memory.NewStore()
	suite.repos = memory.NewRepositoryProvider(store)
	suite.cache = new(MockSummaryCache)
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewDashboardService(suite.repos, suite.cache, time.Minute,
		services.WithClock(func() time.Time { return suite.now }))

	money := decimal.RequireFromString
	_, err := store.CreateAsset(ctx, domain.Asset{ID: uuid.NewString(), InitialValue: money("1000")})
	suite.Require().NoError(err)
	_, err = store.CreateLiability(ctx, domain.Liability{ID: uuid.NewString(), InitialAmount: money("400")})
	suite.Require().NoError(err)
	_, err = store.CreateIncome(ctx, domain.Income{ID: uuid.NewString(), Amount: money("250.50")})
	suite.Require().NoError(err)
	_, err = store.CreateIncome(ctx, domain.Income{ID: uuid.NewString(), Amount: money("49.50")})
	suite.Require().NoError(err)
	_, err = store.CreateExpense(ctx, domain.Expense{ID: uuid.NewString(), Amount: money("75")})
	suite.Require().NoError(err)
	_, err = store.CreateProduct(ctx, domain.Product{ID: uuid.NewString(), Barcode: "012345678905"})
	suite.Require().NoError(err)
}

func (suite *DashboardServiceTestSuite) TestFreshSummaryFoldsCollections() {
	ctx := context.Background()
	suite.cache.On("SetSummary", ctx, mock.AnythingOfType("domain.Summary"), time.Minute).Return(nil).Once()

	summary, err := suite.service.Summary(ctx, true)

	suite.Require().NoError(err)
	suite.Equal(1, summary.ProductCount)
	suite.Equal(1, summary.AssetCount)
	suite.Equal(1, summary.LiabilityCount)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(300)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(75)))
	suite.True(summary.NetWorth.Equal(decimal.NewFromInt(600)))
	suite.Equal(suite.now, summary.GeneratedAt)
	suite.cache.AssertNotCalled(suite.T(), "GetSummary", mock.Anything)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestCachedSummaryIsServed() {
	ctx := context.Background()
	cached := &domain.Summary{ProductCount: 42}
	suite.cache.On("GetSummary", ctx).Return(cached, nil).Once()

	summary, err := suite.service.Summary(ctx, false)

	suite.Require().NoError(err)
	suite.Equal(42, summary.ProductCount)
	suite.cache.AssertNotCalled(suite.T(), "SetSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestCacheFailuresDoNotFailRequest() {
	ctx := context.Background()
	suite.cache.On("GetSummary", ctx).Return(nil, assert.AnError).Once()
	suite.cache.On("SetSummary", ctx, mock.AnythingOfType("domain.Summary"), time.Minute).Return(assert.AnError).Once()

	summary, err := suite.service.Summary(ctx, false)

	suite.Require().NoError(err)
	suite.Equal(1, summary.AssetCount)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func TestEmptySummaryWithoutCache(t *testing.T) {
	svc := services.NewDashboardService(memory.NewRepositoryProvider(memory.NewStore()), nil, time.Minute)

	summary, err := svc.Summary(context.Background(), false)

	assert.NoError(t, err)
	assert.Zero(t, summary.ProductCount)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.NetWorth.IsZero())
}
