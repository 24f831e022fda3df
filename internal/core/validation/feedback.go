package validation

import (
	"fmt"
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var feedbackRequired = []string{"name", "email", "phone", "description"}

// ValidateInquiryCreate validates a new inquiry. The public inquiryId is
// assigned by the service, not taken from input.
func (v *Validator) ValidateInquiryCreate(in Input) (domain.Inquiry, error) {
	r := newReader(in)
	r.require(feedbackRequired...)
	if err := r.missingError(); err != nil {
		return domain.Inquiry{}, err
	}

	inq := domain.Inquiry{
		Name:        r.str("name"),
		Email:       r.str("email"),
		Phone:       r.str("phone"),
		Description: r.str("description"),
		Type:        domain.InquiryType(r.str("type")),
		Status:      domain.InquiryOpen,
	}
	if inq.Type == "" {
		inq.Type = domain.InquiryGeneral
	}
	if err := v.check(r, inq); err != nil {
		return domain.Inquiry{}, err
	}
	inq.Email = strings.ToLower(inq.Email)
	return inq, nil
}

// ValidateSuggestionCreate validates a new suggestion.
func (v *Validator) ValidateSuggestionCreate(in Input) (domain.Suggestion, error) {
	r := newReader(in)
	r.require(feedbackRequired...)
	if err := r.missingError(); err != nil {
		return domain.Suggestion{}, err
	}

	s := domain.Suggestion{
		Name:          r.str("name"),
		Email:         r.str("email"),
		Phone:         r.str("phone"),
		Description:   r.str("description"),
		SubmittedDate: v.now().UTC(),
		Status:        domain.SuggestionPending,
	}
	if err := v.check(r, s); err != nil {
		return domain.Suggestion{}, err
	}
	s.Email = strings.ToLower(s.Email)
	return s, nil
}

// ValidateInquiryStatus validates a status change. Any status may follow any other.
func (v *Validator) ValidateInquiryStatus(in Input) (domain.InquiryStatus, error) {
	status, err := readStatus(in, func(s string) bool { return domain.InquiryStatus(s).IsValid() }, statusNames(domain.InquiryStatuses))
	return domain.InquiryStatus(status), err
}

// ValidateSuggestionStatus validates a status change. Any status may follow any other.
func (v *Validator) ValidateSuggestionStatus(in Input) (domain.SuggestionStatus, error) {
	status, err := readStatus(in, func(s string) bool { return domain.SuggestionStatus(s).IsValid() }, statusNames(domain.SuggestionStatuses))
	return domain.SuggestionStatus(status), err
}

func readStatus(in Input, valid func(string) bool, allowed []string) (string, error) {
	r := newReader(in)
	r.require("status")
	if err := r.missingError(); err != nil {
		return "", err
	}
	status := r.str("status")
	if r.errs.Empty() && !valid(status) {
		r.errs.Add("status", fmt.Sprintf("'%s' is not a valid status; expected one of: %s", status, strings.Join(allowed, ", ")))
	}
	if !r.errs.Empty() {
		return "", r.errs
	}
	return status, nil
}

func statusNames[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
