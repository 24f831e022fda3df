package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// SuggestionReader defines read operations for suggestion data
type SuggestionReader interface {
	// FindSuggestionByID retrieves a suggestion by its ID.
	FindSuggestionByID(ctx context.Context, id string) (*domain.Suggestion, error)

	// FindSuggestionBySuggestionID retrieves a suggestion by its public suggestion ID.
	FindSuggestionBySuggestionID(ctx context.Context, suggestionID string) (*domain.Suggestion, error)

	// ListSuggestions retrieves suggestion records in their default order.
	ListSuggestions(ctx context.Context, opts domain.ListOptions) ([]domain.Suggestion, error)
}

// SuggestionWriter defines write operations for suggestion data
type SuggestionWriter interface {
	// CreateSuggestion persists a new suggestion. The store assigns timestamps.
	CreateSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error)

	// UpdateSuggestion replaces a stored suggestion. A missing record yields apperrors.ErrNotFound.
	UpdateSuggestion(ctx context.Context, suggestion domain.Suggestion) (*domain.Suggestion, error)

	// DeleteSuggestion removes a suggestion and returns the removed record.
	DeleteSuggestion(ctx context.Context, id string) (*domain.Suggestion, error)
}

// SuggestionRepositoryFacade combines all suggestion-related repository interfaces
type SuggestionRepositoryFacade interface {
	SuggestionReader
	SuggestionWriter
}
