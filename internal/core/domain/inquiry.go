package domain

// InquiryType classifies a customer inquiry.
type InquiryType string

const (
	InquiryGeneral   InquiryType = "GENERAL"
	InquiryComplaint InquiryType = "COMPLAINT"
	InquirySupport   InquiryType = "SUPPORT"
	InquiryFeedback  InquiryType = "FEEDBACK"
)

// InquiryStatus is the lifecycle state of an inquiry. Any value may be set at any time.
type InquiryStatus string

const (
	InquiryOpen       InquiryStatus = "OPEN"
	InquiryInProgress InquiryStatus = "IN_PROGRESS"
	InquiryResolved   InquiryStatus = "RESOLVED"
	InquiryClosed     InquiryStatus = "CLOSED"
)

// InquiryStatuses lists every accepted inquiry status.
var InquiryStatuses = []InquiryStatus{InquiryOpen, InquiryInProgress, InquiryResolved, InquiryClosed}

// IsValid reports whether s is a known inquiry status.
func (s InquiryStatus) IsValid() bool { return contains(InquiryStatuses, s) }

// Inquiry is a question or complaint submitted by a customer.
// InquiryID is the public lookup key, independent of ID.
type Inquiry struct {
	ID          string        `json:"id"`
	InquiryID   string        `json:"inquiryId"`
	Name        string        `json:"name" validate:"max=50"`
	Email       string        `json:"email" validate:"emailaddr"`
	Phone       string        `json:"phone" validate:"phone10"`
	Description string        `json:"description" validate:"min=20,max=500"`
	Type        InquiryType   `json:"type" validate:"oneof=GENERAL COMPLAINT SUPPORT FEEDBACK"`
	Status      InquiryStatus `json:"status" validate:"oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Timestamps
}

// FormattedDate renders the submission date for display.
func (i Inquiry) FormattedDate() string {
	return FormatDisplayDate(i.CreatedAt)
}
