package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/SscSPs/biz_records_app/internal/adapters/database/memory"
	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var publicIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestInquiryLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := services.NewInquiryService(memory.NewStore())

	created, err := svc.SubmitInquiry(ctx, domain.Inquiry{
		Name:        "Ann Lee",
		Email:       "ann@example.com",
		Phone:       "5551234567",
		Description: "My order arrived without the receipt.",
		Type:        domain.InquiryComplaint,
		Status:      domain.InquiryOpen,
	})
	require.NoError(t, err)
	assert.Regexp(t, publicIDPattern, created.InquiryID)
	assert.NotEqual(t, created.ID, created.InquiryID)

	found, err := svc.GetInquiry(ctx, created.InquiryID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	updated, err := svc.UpdateInquiryStatus(ctx, created.InquiryID, domain.InquiryResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryResolved, updated.Status)
	assert.Equal(t, "My order arrived without the receipt.", updated.Description)

	_, err = svc.DeleteInquiry(ctx, created.InquiryID)
	require.NoError(t, err)
	_, err = svc.GetInquiry(ctx, created.InquiryID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSuggestionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSuggestionService(memory.NewStore())

	first, err := svc.SubmitSuggestion(ctx, domain.Suggestion{
		Name:        "Bob Ray",
		Email:       "bob@example.com",
		Phone:       "5559876543",
		Description: "Please stock more oat milk varieties.",
		Status:      domain.SuggestionPending,
	})
	require.NoError(t, err)
	second, err := svc.SubmitSuggestion(ctx, domain.Suggestion{
		Name:        "Cy Doe",
		Email:       "cy@example.com",
		Phone:       "5550001111",
		Description: "Extend weekend opening hours please.",
		Status:      domain.SuggestionPending,
	})
	require.NoError(t, err)

	assert.Regexp(t, publicIDPattern, first.SuggestionID)
	assert.NotEqual(t, first.SuggestionID, second.SuggestionID)
	assert.False(t, first.SubmittedDate.IsZero())

	updated, err := svc.UpdateSuggestionStatus(ctx, first.SuggestionID, domain.SuggestionImplemented)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionImplemented, updated.Status)

	_, err = svc.UpdateSuggestionStatus(ctx, "unknown", domain.SuggestionArchived)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	list, err := svc.ListSuggestions(ctx, domain.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
