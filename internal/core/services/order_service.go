package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type orderService struct {
	BaseService
	orderRepo    portsrepo.OrderRepositoryFacade
	supplierRepo portsrepo.SupplierReader
}

// NewOrderService creates a new order service. Orders must reference an
// existing supplier, checked through supplierRepo.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, supplierRepo portsrepo.SupplierReader, opts ...ServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{orderRepo: orderRepo, supplierRepo: supplierRepo}
	svc.apply(opts)
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// ensureSupplier turns a dangling supplier reference into a field violation.
func (s *orderService) ensureSupplier(ctx context.Context, supplierID string) error {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("", apperrors.FieldViolation{
				Field:   "supplierId",
				Message: "supplierId does not reference an existing supplier",
			})
		}
		return fmt.Errorf("failed to check supplier %s: %w", supplierID, err)
	}
	return nil
}

func (s *orderService) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if err := s.ensureSupplier(ctx, order.SupplierID); err != nil {
		s.logFailure(ctx, err, "Rejected order", slog.String("supplier_id", order.SupplierID))
		return nil, err
	}

	order.ID = uuid.NewString()

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create order", slog.String("order_number", order.OrderNumber))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.LogInfo(ctx, "Order created", slog.String("order_id", created.ID), slog.String("total", created.Total().StringFixed(2)))
	return created, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get order", slog.String("order_id", id))
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, opts domain.ListOptions) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (s *orderService) SupplierSummaries(ctx context.Context, orders []domain.Order) map[string]domain.SupplierSummary {
	summaries := make(map[string]domain.SupplierSummary)
	seen := make(map[string]bool)
	for _, order := range orders {
		if seen[order.SupplierID] {
			continue
		}
		seen[order.SupplierID] = true

		supplier, err := s.supplierRepo.FindSupplierByID(ctx, order.SupplierID)
		if err != nil {
			s.logFailure(ctx, err, "Failed to load supplier for order listing", slog.String("supplier_id", order.SupplierID))
			continue
		}
		summaries[order.SupplierID] = supplier.Summary()
	}
	return summaries
}

func (s *orderService) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	current, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load order for update", slog.String("order_id", id))
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	if patch.SupplierID != nil && *patch.SupplierID != current.SupplierID {
		if err := s.ensureSupplier(ctx, *patch.SupplierID); err != nil {
			s.logFailure(ctx, err, "Rejected order update", slog.String("order_id", id))
			return nil, err
		}
	}

	patch.ApplyTo(current)

	updated, err := s.orderRepo.UpdateOrder(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update order", slog.String("order_id", id))
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}

	s.LogInfo(ctx, "Order updated", slog.String("order_id", id))
	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	deleted, err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete order", slog.String("order_id", id))
		return nil, fmt.Errorf("failed to delete order %s: %w", id, err)
	}

	s.LogInfo(ctx, "Order deleted", slog.String("order_id", id))
	return deleted, nil
}
