package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	supplierRepo *MockSupplierReader
	service      portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.supplierRepo = new(MockSupplierReader)
	suite.service = services.NewOrderService(suite.orderRepo, suite.supplierRepo)
}

func sampleOrder(supplierID string) domain.Order {
	return domain.Order{
		OrderNumber:   "PO-1001",
		SupplierID:    supplierID,
		Items:         []domain.OrderLineItem{{ItemCode: "A1", Name: "Apples", Quantity: 3}},
		Pricing:       domain.OrderPricing{UnitPrice: decimal.RequireFromString("2.50"), Discount: decimal.NewFromInt(10)},
		DeliveryDate:  time.Now().Add(48 * time.Hour),
		Status:        domain.OrderPending,
		PaymentMethod: "credit",
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	order := sampleOrder(supplierID)

	suite.supplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{ID: supplierID}, nil).Once()
	var saved domain.Order
	suite.orderRepo.On("CreateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.ID != "" && o.OrderNumber == "PO-1001"
	})).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Order)
	}).Return(&saved, nil).Once()

	created, err := suite.service.CreateOrder(ctx, order)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ID)
	suite.True(created.Total().Equal(decimal.RequireFromString("6.75")))
	suite.orderRepo.AssertExpectations(suite.T())
	suite.supplierRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownSupplier() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.supplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateOrder(ctx, sampleOrder(supplierID))

	suite.Nil(created)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.True(verr.HasField("supplierId"))
	suite.orderRepo.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_SupplierLookupFails() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.supplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateOrder(ctx, sampleOrder(supplierID))

	suite.Require().ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Duplicate() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.supplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{ID: supplierID}, nil).Once()
	suite.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("domain.Order")).
		Return(nil, apperrors.NewDuplicateError("order with number PO-1001 already exists")).Once()

	_, err := suite.service.CreateOrder(ctx, sampleOrder(supplierID))

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_MergesAndSkipsUnchangedSupplier() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	existing := sampleOrder(supplierID)
	existing.ID = uuid.NewString()

	status := domain.OrderShipped
	patch := domain.OrderPatch{SupplierID: &supplierID, Status: &status}

	suite.orderRepo.On("FindOrderByID", ctx, existing.ID).Return(&existing, nil).Once()
	var saved domain.Order
	suite.orderRepo.On("UpdateOrder", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderShipped && o.OrderNumber == existing.OrderNumber
	})).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Order)
	}).Return(&saved, nil).Once()

	updated, err := suite.service.UpdateOrder(ctx, existing.ID, patch)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderShipped, updated.Status)
	suite.Len(updated.Items, 1)
	suite.supplierRepo.AssertNotCalled(suite.T(), "FindSupplierByID", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_ChangedSupplierMustExist() {
	ctx := context.Background()
	existing := sampleOrder(uuid.NewString())
	existing.ID = uuid.NewString()
	other := uuid.NewString()

	suite.orderRepo.On("FindOrderByID", ctx, existing.ID).Return(&existing, nil).Once()
	suite.supplierRepo.On("FindSupplierByID", ctx, other).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateOrder(ctx, existing.ID, domain.OrderPatch{SupplierID: &other})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_NotFound() {
	ctx := context.Background()
	suite.orderRepo.On("FindOrderByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateOrder(ctx, "missing", domain.OrderPatch{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestListOrders_NilBecomesEmpty() {
	ctx := context.Background()
	suite.orderRepo.On("ListOrders", ctx, domain.ListOptions{}).Return(nil, nil).Once()

	orders, err := suite.service.ListOrders(ctx, domain.ListOptions{})

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderServiceTestSuite) TestSupplierSummaries_LooksUpEachSupplierOnce() {
	ctx := context.Background()
	known, lost := uuid.NewString(), uuid.NewString()
	orders := []domain.Order{sampleOrder(known), sampleOrder(known), sampleOrder(lost)}

	suite.supplierRepo.On("FindSupplierByID", ctx, known).Return(&domain.Supplier{
		ID:      known,
		Name:    "Fresh Farms",
		Contact: domain.SupplierContact{Phone: "+1 555 0100"},
	}, nil).Once()
	suite.supplierRepo.On("FindSupplierByID", ctx, lost).Return(nil, apperrors.ErrNotFound).Once()

	summaries := suite.service.SupplierSummaries(ctx, orders)

	suite.Equal(map[string]domain.SupplierSummary{
		known: {Name: "Fresh Farms", Phone: "+1 555 0100"},
	}, summaries)
	suite.supplierRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
