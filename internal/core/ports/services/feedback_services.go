package services

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// InquirySvcFacade manages customer inquiries keyed by their public inquiry ID.
type InquirySvcFacade interface {
	// SubmitInquiry assigns a public inquiry ID and stores the inquiry.
	SubmitInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)
	GetInquiry(ctx context.Context, inquiryID string) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context, opts domain.ListOptions) ([]domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, inquiryID string, status domain.InquiryStatus) (*domain.Inquiry, error)
	DeleteInquiry(ctx context.Context, inquiryID string) (*domain.Inquiry, error)
}

// SuggestionSvcFacade manages customer suggestions keyed by their public suggestion ID.
type SuggestionSvcFacade interface {
	// SubmitSuggestion assigns a public suggestion ID and stores the suggestion.
	SubmitSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error)
	GetSuggestion(ctx context.Context, suggestionID string) (*domain.Suggestion, error)
	ListSuggestions(ctx context.Context, opts domain.ListOptions) ([]domain.Suggestion, error)
	UpdateSuggestionStatus(ctx context.Context, suggestionID string, status domain.SuggestionStatus) (*domain.Suggestion, error)
	DeleteSuggestion(ctx context.Context, suggestionID string) (*domain.Suggestion, error)
}
