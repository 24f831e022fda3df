package domain

import (
	"slices"
	"time"
)

// Timestamps holds the store-assigned audit times carried by every record.
// Callers never set these; the record store does on create and update.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stamp sets CreatedAt (when unset) and UpdatedAt to now.
func (t *Timestamps) Stamp(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// ListOptions controls pagination and direction for list queries.
// Limit <= 0 means no limit.
type ListOptions struct {
	Limit     int
	Offset    int
	Ascending bool
}

// Address is the optional postal address used by suppliers and orders.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// AddressPatch carries the address sub-fields supplied in an update.
type AddressPatch struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// ApplyTo merges the supplied sub-fields into a.
func (p *AddressPatch) ApplyTo(a *Address) {
	if p == nil {
		return
	}
	setIfPresent(&a.Street, p.Street)
	setIfPresent(&a.City, p.City)
	setIfPresent(&a.State, p.State)
	setIfPresent(&a.PostalCode, p.PostalCode)
	setIfPresent(&a.Country, p.Country)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func stringValues[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func contains[T comparable](set []T, v T) bool {
	return slices.Contains(set, v)
}

// FormatDisplayDate renders a date the way the record lists show it ("January 2, 2006").
func FormatDisplayDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
