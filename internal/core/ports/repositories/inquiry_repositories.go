package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// InquiryReader defines read operations for inquiry data
type InquiryReader interface {
	// FindInquiryByID retrieves an inquiry by its ID.
	FindInquiryByID(ctx context.Context, id string) (*domain.Inquiry, error)

	// FindInquiryByInquiryID retrieves an inquiry by its public inquiry ID.
	FindInquiryByInquiryID(ctx context.Context, inquiryID string) (*domain.Inquiry, error)

	// ListInquiries retrieves inquiry records in their default order.
	ListInquiries(ctx context.Context, opts domain.ListOptions) ([]domain.Inquiry, error)
}

// InquiryWriter defines write operations for inquiry data
type InquiryWriter interface {
	// CreateInquiry persists a new inquiry. The store assigns timestamps.
	CreateInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)

	// UpdateInquiry replaces a stored inquiry. A missing record yields apperrors.ErrNotFound.
	UpdateInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)

	// DeleteInquiry removes an inquiry and returns the removed record.
	DeleteInquiry(ctx context.Context, id string) (*domain.Inquiry, error)
}

// InquiryRepositoryFacade combines all inquiry-related repository interfaces
type InquiryRepositoryFacade interface {
	InquiryReader
	InquiryWriter
}
