package domain

import "time"

// SuggestionStatus is the lifecycle state of a suggestion. Any value may be set at any time.
type SuggestionStatus string

const (
	SuggestionPending     SuggestionStatus = "PENDING"
	SuggestionReviewed    SuggestionStatus = "REVIEWED"
	SuggestionImplemented SuggestionStatus = "IMPLEMENTED"
	SuggestionArchived    SuggestionStatus = "ARCHIVED"
)

// SuggestionStatuses lists every accepted suggestion status.
var SuggestionStatuses = []SuggestionStatus{SuggestionPending, SuggestionReviewed, SuggestionImplemented, SuggestionArchived}

// IsValid reports whether s is a known suggestion status.
func (s SuggestionStatus) IsValid() bool { return contains(SuggestionStatuses, s) }

// Suggestion is an improvement idea submitted by a customer.
// SuggestionID is the public lookup key, independent of ID.
type Suggestion struct {
	ID            string           `json:"id"`
	SuggestionID  string           `json:"suggestionId"`
	Name          string           `json:"name" validate:"max=50"`
	Email         string           `json:"email" validate:"emailaddr"`
	Phone         string           `json:"phone" validate:"phone10"`
	Description   string           `json:"description" validate:"min=20,max=500"`
	SubmittedDate time.Time        `json:"submittedDate"`
	Status        SuggestionStatus `json:"status" validate:"oneof=PENDING REVIEWED IMPLEMENTED ARCHIVED"`
	Timestamps
}

// FormattedDate renders the submission date for display.
func (s Suggestion) FormattedDate() string {
	return FormatDisplayDate(s.SubmittedDate)
}
