package dto

import "github.com/SscSPs/biz_records_app/internal/core/domain"

// InquiryResponse is an inquiry with its display date.
type InquiryResponse struct {
	domain.Inquiry
	FormattedDate string `json:"formattedDate"`
}

// SuggestionResponse is a suggestion with its display date.
type SuggestionResponse struct {
	domain.Suggestion
	FormattedDate string `json:"formattedDate"`
}

// StatusUpdateRequest is the body of a status change. Documentation only; the
// handlers validate the raw body.
type StatusUpdateRequest struct {
	Status string `json:"status" example:"RESOLVED"`
}

func ToInquiryResponse(i *domain.Inquiry) InquiryResponse {
	return InquiryResponse{Inquiry: *i, FormattedDate: i.FormattedDate()}
}

func ToListInquiryResponse(inquiries []domain.Inquiry) []InquiryResponse {
	return MapList(inquiries, ToInquiryResponse)
}

func ToSuggestionResponse(s *domain.Suggestion) SuggestionResponse {
	return SuggestionResponse{Suggestion: *s, FormattedDate: s.FormattedDate()}
}

func ToListSuggestionResponse(suggestions []domain.Suggestion) []SuggestionResponse {
	return MapList(suggestions, ToSuggestionResponse)
}
