package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

func cloneSupplier(sp domain.Supplier) domain.Supplier {
	sp.ItemCategories = slices.Clone(sp.ItemCategories)
	return sp
}

func (s *Store) supplierCodeTaken(sp domain.Supplier) bool {
	return taken(s.suppliers, sp.ID, func(other domain.Supplier) bool {
		return same(other.SupplierID, sp.SupplierID)
	})
}

func (s *Store) CreateSupplier(ctx context.Context, sp domain.Supplier) (*domain.Supplier, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.supplierCodeTaken(sp) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("supplier with supplierId %s already exists", sp.SupplierID))
	}
	sp = cloneSupplier(sp)
	sp.Timestamps = s.created()
	s.suppliers[sp.ID] = sp
	return ptr(cloneSupplier(sp)), nil
}

func (s *Store) FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sp, ok := s.suppliers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(cloneSupplier(sp)), nil
}

func (s *Store) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]domain.Supplier, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.suppliers, func(r domain.Supplier) (time.Time, domain.Timestamps, string) {
		return r.CreatedAt, r.Timestamps, r.ID
	}, opts, cloneSupplier), nil
}

func (s *Store) UpdateSupplier(ctx context.Context, sp domain.Supplier) (*domain.Supplier, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.suppliers[sp.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.supplierCodeTaken(sp) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("supplier with supplierId %s already exists", sp.SupplierID))
	}
	sp = cloneSupplier(sp)
	sp.Timestamps = s.updated(prev.Timestamps)
	s.suppliers[sp.ID] = sp
	return ptr(cloneSupplier(sp)), nil
}

// DeleteSupplier refuses to remove a supplier that any order still references.
func (s *Store) DeleteSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sp, ok := s.suppliers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	referenced := taken(s.orders, "", func(o domain.Order) bool {
		return o.SupplierID == id
	})
	if referenced {
		return nil, apperrors.NewConflictError(fmt.Sprintf("supplier %s is still referenced by orders", sp.SupplierID))
	}
	delete(s.suppliers, id)
	return ptr(sp), nil
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func (s *Store) orderNumberTaken(o domain.Order) bool {
	return taken(s.orders, o.ID, func(other domain.Order) bool {
		return same(other.OrderNumber, o.OrderNumber)
	})
}

// checkOrder applies the uniqueness and supplier reference rules shared by
// create and update.
func (s *Store) checkOrder(o domain.Order) error {
	if _, ok := s.suppliers[o.SupplierID]; !ok {
		return apperrors.NewValidationError("", apperrors.FieldViolation{
			Field:   "supplierId",
			Message: "supplierId does not reference an existing supplier",
		})
	}
	if s.orderNumberTaken(o) {
		return apperrors.NewDuplicateError(fmt.Sprintf("order with number %s already exists", o.OrderNumber))
	}
	return nil
}

func (s *Store) CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.checkOrder(o); err != nil {
		return nil, err
	}
	o = cloneOrder(o)
	o.Timestamps = s.created()
	s.orders[o.ID] = o
	return ptr(cloneOrder(o)), nil
}

func (s *Store) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(cloneOrder(o)), nil
}

func (s *Store) ListOrders(ctx context.Context, opts domain.ListOptions) ([]domain.Order, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.orders, func(r domain.Order) (time.Time, domain.Timestamps, string) {
		return r.CreatedAt, r.Timestamps, r.ID
	}, opts, cloneOrder), nil
}

func (s *Store) UpdateOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.orders[o.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if err := s.checkOrder(o); err != nil {
		return nil, err
	}
	o = cloneOrder(o)
	o.Timestamps = s.updated(prev.Timestamps)
	s.orders[o.ID] = o
	return ptr(cloneOrder(o)), nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.orders, id)
	return ptr(o), nil
}
