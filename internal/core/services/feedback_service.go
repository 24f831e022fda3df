package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/google/uuid"
)

type inquiryService struct {
	BaseService
	inquiryRepo portsrepo.InquiryRepositoryFacade
	newPublicID func() (string, error)
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(repo portsrepo.InquiryRepositoryFacade, opts ...ServiceOption) portssvc.InquirySvcFacade {
	svc := &inquiryService{inquiryRepo: repo, newPublicID: utils.NewPublicID}
	svc.apply(opts)
	return svc
}

var _ portssvc.InquirySvcFacade = (*inquiryService)(nil)

func (s *inquiryService) SubmitInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error) {
	publicID, err := s.newPublicID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate inquiry ID")
		return nil, fmt.Errorf("failed to generate inquiry ID: %w", err)
	}
	inquiry.ID = uuid.NewString()
	inquiry.InquiryID = publicID

	created, err := s.inquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		s.logFailure(ctx, err, "Failed to submit inquiry")
		return nil, fmt.Errorf("failed to submit inquiry: %w", err)
	}

	s.LogInfo(ctx, "Inquiry submitted", slog.String("inquiry_id", created.InquiryID), slog.String("type", string(created.Type)))
	return created, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, inquiryID string) (*domain.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindInquiryByInquiryID(ctx, inquiryID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get inquiry", slog.String("inquiry_id", inquiryID))
		return nil, fmt.Errorf("failed to get inquiry %s: %w", inquiryID, err)
	}
	return inquiry, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, opts domain.ListOptions) ([]domain.Inquiry, error) {
	inquiries, err := s.inquiryRepo.ListInquiries(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inquiries")
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	if inquiries == nil {
		return []domain.Inquiry{}, nil
	}
	return inquiries, nil
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, inquiryID string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	current, err := s.inquiryRepo.FindInquiryByInquiryID(ctx, inquiryID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load inquiry for status update", slog.String("inquiry_id", inquiryID))
		return nil, fmt.Errorf("failed to get inquiry %s: %w", inquiryID, err)
	}

	current.Status = status

	updated, err := s.inquiryRepo.UpdateInquiry(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update inquiry status", slog.String("inquiry_id", inquiryID))
		return nil, fmt.Errorf("failed to update inquiry %s: %w", inquiryID, err)
	}

	s.LogInfo(ctx, "Inquiry status updated", slog.String("inquiry_id", inquiryID), slog.String("status", string(status)))
	return updated, nil
}

func (s *inquiryService) DeleteInquiry(ctx context.Context, inquiryID string) (*domain.Inquiry, error) {
	current, err := s.inquiryRepo.FindInquiryByInquiryID(ctx, inquiryID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load inquiry for delete", slog.String("inquiry_id", inquiryID))
		return nil, fmt.Errorf("failed to get inquiry %s: %w", inquiryID, err)
	}

	deleted, err := s.inquiryRepo.DeleteInquiry(ctx, current.ID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete inquiry", slog.String("inquiry_id", inquiryID))
		return nil, fmt.Errorf("failed to delete inquiry %s: %w", inquiryID, err)
	}

	s.LogInfo(ctx, "Inquiry deleted", slog.String("inquiry_id", inquiryID))
	return deleted, nil
}

type suggestionService struct {
	BaseService
	suggestionRepo portsrepo.SuggestionRepositoryFacade
	newPublicID    func() (string, error)
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(repo portsrepo.SuggestionRepositoryFacade, opts ...ServiceOption) portssvc.SuggestionSvcFacade {
	svc := &suggestionService{suggestionRepo: repo, newPublicID: utils.NewPublicID}
	svc.apply(opts)
	return svc
}

var _ portssvc.SuggestionSvcFacade = (*suggestionService)(nil)

func (s *suggestionService) SubmitSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error) {
	publicID, err := s.newPublicID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate suggestion ID")
		return nil, fmt.Errorf("failed to generate suggestion ID: %w", err)
	}
	suggestion.ID = uuid.NewString()
	suggestion.SuggestionID = publicID
	if suggestion.SubmittedDate.IsZero() {
		suggestion.SubmittedDate = s.Now()
	}

	created, err := s.suggestionRepo.CreateSuggestion(ctx, suggestion)
	if err != nil {
		s.logFailure(ctx, err, "Failed to submit suggestion")
		return nil, fmt.Errorf("failed to submit suggestion: %w", err)
	}

	s.LogInfo(ctx, "Suggestion submitted", slog.String("suggestion_id", created.SuggestionID))
	return created, nil
}

func (s *suggestionService) GetSuggestion(ctx context.Context, suggestionID string) (*domain.Suggestion, error) {
	suggestion, err := s.suggestionRepo.FindSuggestionBySuggestionID(ctx, suggestionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get suggestion", slog.String("suggestion_id", suggestionID))
		return nil, fmt.Errorf("failed to get suggestion %s: %w", suggestionID, err)
	}
	return suggestion, nil
}

func (s *suggestionService) ListSuggestions(ctx context.Context, opts domain.ListOptions) ([]domain.Suggestion, error) {
	suggestions, err := s.suggestionRepo.ListSuggestions(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suggestions")
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	if suggestions == nil {
		return []domain.Suggestion{}, nil
	}
	return suggestions, nil
}

func (s *suggestionService) UpdateSuggestionStatus(ctx context.Context, suggestionID string, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	current, err := s.suggestionRepo.FindSuggestionBySuggestionID(ctx, suggestionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load suggestion for status update", slog.String("suggestion_id", suggestionID))
		return nil, fmt.Errorf("failed to get suggestion %s: %w", suggestionID, err)
	}

	current.Status = status

	updated, err := s.suggestionRepo.UpdateSuggestion(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update suggestion status", slog.String("suggestion_id", suggestionID))
		return nil, fmt.Errorf("failed to update suggestion %s: %w", suggestionID, err)
	}

	s.LogInfo(ctx, "Suggestion status updated", slog.String("suggestion_id", suggestionID), slog.String("status", string(status)))
	return updated, nil
}

func (s *suggestionService) DeleteSuggestion(ctx context.Context, suggestionID string) (*domain.Suggestion, error) {
	current, err := s.suggestionRepo.FindSuggestionBySuggestionID(ctx, suggestionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load suggestion for delete", slog.String("suggestion_id", suggestionID))
		return nil, fmt.Errorf("failed to get suggestion %s: %w", suggestionID, err)
	}

	deleted, err := s.suggestionRepo.DeleteSuggestion(ctx, current.ID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete suggestion", slog.String("suggestion_id", suggestionID))
		return nil, fmt.Errorf("failed to delete suggestion %s: %w", suggestionID, err)
	}

	s.LogInfo(ctx, "Suggestion deleted", slog.String("suggestion_id", suggestionID))
	return deleted, nil
}
