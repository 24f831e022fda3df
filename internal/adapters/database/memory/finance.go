package memory

import (
	"context"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

func (s *Store) CreateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	a.Timestamps = s.created()
	s.assets[a.ID] = a
	return ptr(a), nil
}

func (s *Store) FindAssetByID(ctx context.Context, id string) (*domain.Asset, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(a), nil
}

func (s *Store) ListAssets(ctx context.Context, opts domain.ListOptions) ([]domain.Asset, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.assets, func(r domain.Asset) (time.Time, domain.Timestamps, string) {
		return r.PurchaseDate, r.Timestamps, r.ID
	}, opts, keep[domain.Asset]), nil
}

func (s *Store) UpdateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.assets[a.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	a.Timestamps = s.updated(prev.Timestamps)
	s.assets[a.ID] = a
	return ptr(a), nil
}

func (s *Store) DeleteAsset(ctx context.Context, id string) (*domain.Asset, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.assets, id)
	return ptr(a), nil
}

func (s *Store) CreateLiability(ctx context.Context, l domain.Liability) (*domain.Liability, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	l.Timestamps = s.created()
	s.liabilities[l.ID] = l
	return ptr(l), nil
}

func (s *Store) FindLiabilityByID(ctx context.Context, id string) (*domain.Liability, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	l, ok := s.liabilities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(l), nil
}

func (s *Store) ListLiabilities(ctx context.Context, opts domain.ListOptions) ([]domain.Liability, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.liabilities, func(r domain.Liability) (time.Time, domain.Timestamps, string) {
		return r.StartDate, r.Timestamps, r.ID
	}, opts, keep[domain.Liability]), nil
}

func (s *Store) UpdateLiability(ctx context.Context, l domain.Liability) (*domain.Liability, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.liabilities[l.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	l.Timestamps = s.updated(prev.Timestamps)
	s.liabilities[l.ID] = l
	return ptr(l), nil
}

func (s *Store) DeleteLiability(ctx context.Context, id string) (*domain.Liability, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	l, ok := s.liabilities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.liabilities, id)
	return ptr(l), nil
}

func (s *Store) CreateIncome(ctx context.Context, in domain.Income) (*domain.Income, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	in.Timestamps = s.created()
	s.incomes[in.ID] = in
	return ptr(in), nil
}

func (s *Store) FindIncomeByID(ctx context.Context, id string) (*domain.Income, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	in, ok := s.incomes[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(in), nil
}

func (s *Store) ListIncomes(ctx context.Context, opts domain.ListOptions) ([]domain.Income, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.incomes, func(r domain.Income) (time.Time, domain.Timestamps, string) {
		return r.Date, r.Timestamps, r.ID
	}, opts, keep[domain.Income]), nil
}

func (s *Store) UpdateIncome(ctx context.Context, in domain.Income) (*domain.Income, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.incomes[in.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	in.Timestamps = s.updated(prev.Timestamps)
	s.incomes[in.ID] = in
	return ptr(in), nil
}

func (s *Store) DeleteIncome(ctx context.Context, id string) (*domain.Income, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	in, ok := s.incomes[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.incomes, id)
	return ptr(in), nil
}

func (s *Store) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	e.Timestamps = s.created()
	s.expenses[e.ID] = e
	return ptr(e), nil
}

func (s *Store) FindExpenseByID(ctx context.Context, id string) (*domain.Expense, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, ok := s.expenses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(e), nil
}

func (s *Store) ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.Expense, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.expenses, func(r domain.Expense) (time.Time, domain.Timestamps, string) {
		return r.Date, r.Timestamps, r.ID
	}, opts, keep[domain.Expense]), nil
}

func (s *Store) UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.expenses[e.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e.Timestamps = s.updated(prev.Timestamps)
	s.expenses[e.ID] = e
	return ptr(e), nil
}

func (s *Store) DeleteExpense(ctx context.Context, id string) (*domain.Expense, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, ok := s.expenses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.expenses, id)
	return ptr(e), nil
}
