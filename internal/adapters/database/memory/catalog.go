package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

func cloneProduct(p domain.Product) domain.Product {
	if p.NutritionalInfo != nil {
		info := *p.NutritionalInfo
		info.Allergens = slices.Clone(info.Allergens)
		if info.Calories != nil {
			info.Calories = ptr(*info.Calories)
		}
		p.NutritionalInfo = &info
	}
	return p
}

func (s *Store) barcodeTaken(p domain.Product) bool {
	return taken(s.products, p.ID, func(other domain.Product) bool {
		return same(other.Barcode, p.Barcode)
	})
}

func (s *Store) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.barcodeTaken(p) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("product with barcode %s already exists", p.Barcode))
	}
	p = cloneProduct(p)
	p.Timestamps = s.created()
	s.products[p.ID] = p
	return ptr(cloneProduct(p)), nil
}

func (s *Store) FindProductByID(ctx context.Context, id string) (*domain.Product, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(cloneProduct(p)), nil
}

func (s *Store) ListProducts(ctx context.Context, opts domain.ListOptions) ([]domain.Product, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.products, func(r domain.Product) (time.Time, domain.Timestamps, string) {
		return r.CreatedAt, r.Timestamps, r.ID
	}, opts, cloneProduct), nil
}

func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.products[p.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.barcodeTaken(p) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("product with barcode %s already exists", p.Barcode))
	}
	p = cloneProduct(p)
	p.Timestamps = s.updated(prev.Timestamps)
	s.products[p.ID] = p
	return ptr(cloneProduct(p)), nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.products, id)
	return ptr(p), nil
}

func clonePromotion(p domain.Promotion) domain.Promotion {
	p.TargetAudience = slices.Clone(p.TargetAudience)
	return p
}

func (s *Store) promotionCodeTaken(p domain.Promotion) bool {
	return taken(s.promotions, p.ID, func(other domain.Promotion) bool {
		return same(other.PromotionCode, p.PromotionCode)
	})
}

func (s *Store) CreatePromotion(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.promotionCodeTaken(p) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("promotion with code %s already exists", p.PromotionCode))
	}
	p = clonePromotion(p)
	p.Timestamps = s.created()
	s.promotions[p.ID] = p
	return ptr(clonePromotion(p)), nil
}

func (s *Store) FindPromotionByID(ctx context.Context, id string) (*domain.Promotion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.promotions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(clonePromotion(p)), nil
}

func (s *Store) FindPromotionByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, p := range s.promotions {
		if same(p.PromotionCode, code) {
			return ptr(clonePromotion(p)), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListPromotions(ctx context.Context, opts domain.ListOptions) ([]domain.Promotion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.promotions, func(r domain.Promotion) (time.Time, domain.Timestamps, string) {
		return r.StartDate, r.Timestamps, r.ID
	}, opts, clonePromotion), nil
}

func (s *Store) UpdatePromotion(ctx context.Context, p domain.Promotion) (*domain.Promotion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.promotions[p.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.promotionCodeTaken(p) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("promotion with code %s already exists", p.PromotionCode))
	}
	p = clonePromotion(p)
	p.Timestamps = s.updated(prev.Timestamps)
	s.promotions[p.ID] = p
	return ptr(clonePromotion(p)), nil
}

func (s *Store) DeletePromotion(ctx context.Context, id string) (*domain.Promotion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	p, ok := s.promotions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.promotions, id)
	return ptr(p), nil
}
