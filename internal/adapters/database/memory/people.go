package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

func (s *Store) emailTaken(c domain.Customer) bool {
	return taken(s.customers, c.ID, func(other domain.Customer) bool {
		return same(other.Email, c.Email)
	})
}

func (s *Store) CreateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.emailTaken(c) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("customer with email %s already exists", c.Email))
	}
	c.Timestamps = s.created()
	if c.MembershipDate.IsZero() {
		c.MembershipDate = c.CreatedAt
	}
	s.customers[c.ID] = c
	return ptr(c), nil
}

func (s *Store) FindCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(c), nil
}

func (s *Store) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, c := range s.customers {
		if same(c.Email, email) {
			return ptr(c), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]domain.Customer, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.customers, func(r domain.Customer) (time.Time, domain.Timestamps, string) {
		return r.MembershipDate, r.Timestamps, r.ID
	}, opts, keep[domain.Customer]), nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.customers[c.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.emailTaken(c) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("customer with email %s already exists", c.Email))
	}
	c.Timestamps = s.updated(prev.Timestamps)
	s.customers[c.ID] = c
	return ptr(c), nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.customers, id)
	return ptr(c), nil
}

func (s *Store) inquiryIDTaken(in domain.Inquiry) bool {
	return taken(s.inquiries, in.ID, func(other domain.Inquiry) bool {
		return other.InquiryID == in.InquiryID
	})
}

func (s *Store) CreateInquiry(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.inquiryIDTaken(in) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("inquiry %s already exists", in.InquiryID))
	}
	in.Timestamps = s.created()
	s.inquiries[in.ID] = in
	return ptr(in), nil
}

func (s *Store) FindInquiryByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	in, ok := s.inquiries[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(in), nil
}

func (s *Store) FindInquiryByInquiryID(ctx context.Context, inquiryID string) (*domain.Inquiry, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, in := range s.inquiries {
		if in.InquiryID == inquiryID {
			return ptr(in), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListInquiries(ctx context.Context, opts domain.ListOptions) ([]domain.Inquiry, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.inquiries, func(r domain.Inquiry) (time.Time, domain.Timestamps, string) {
		return r.CreatedAt, r.Timestamps, r.ID
	}, opts, keep[domain.Inquiry]), nil
}

func (s *Store) UpdateInquiry(ctx context.Context, in domain.Inquiry) (*domain.Inquiry, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.inquiries[in.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.inquiryIDTaken(in) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("inquiry %s already exists", in.InquiryID))
	}
	in.Timestamps = s.updated(prev.Timestamps)
	s.inquiries[in.ID] = in
	return ptr(in), nil
}

func (s *Store) DeleteInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	in, ok := s.inquiries[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.inquiries, id)
	return ptr(in), nil
}

func (s *Store) suggestionIDTaken(sg domain.Suggestion) bool {
	return taken(s.suggestions, sg.ID, func(other domain.Suggestion) bool {
		return other.SuggestionID == sg.SuggestionID
	})
}

func (s *Store) CreateSuggestion(ctx context.Context, sg domain.Suggestion) (*domain.Suggestion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if s.suggestionIDTaken(sg) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("suggestion %s already exists", sg.SuggestionID))
	}
	sg.Timestamps = s.created()
	if sg.SubmittedDate.IsZero() {
		sg.SubmittedDate = sg.CreatedAt
	}
	s.suggestions[sg.ID] = sg
	return ptr(sg), nil
}

func (s *Store) FindSuggestionByID(ctx context.Context, id string) (*domain.Suggestion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sg, ok := s.suggestions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return ptr(sg), nil
}

func (s *Store) FindSuggestionBySuggestionID(ctx context.Context, suggestionID string) (*domain.Suggestion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, sg := range s.suggestions {
		if sg.SuggestionID == suggestionID {
			return ptr(sg), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListSuggestions(ctx context.Context, opts domain.ListOptions) ([]domain.Suggestion, error) {
	unlock, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return page(s.suggestions, func(r domain.Suggestion) (time.Time, domain.Timestamps, string) {
		return r.SubmittedDate, r.Timestamps, r.ID
	}, opts, keep[domain.Suggestion]), nil
}

func (s *Store) UpdateSuggestion(ctx context.Context, sg domain.Suggestion) (*domain.Suggestion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	prev, ok := s.suggestions[sg.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if s.suggestionIDTaken(sg) {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("suggestion %s already exists", sg.SuggestionID))
	}
	sg.Timestamps = s.updated(prev.Timestamps)
	s.suggestions[sg.ID] = sg
	return ptr(sg), nil
}

func (s *Store) DeleteSuggestion(ctx context.Context, id string) (*domain.Suggestion, error) {
	unlock, err := s.write(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sg, ok := s.suggestions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(s.suggestions, id)
	return ptr(sg), nil
}
