package validation

import (
	"slices"
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var supplierRequired = []string{"supplierId", "name", "contact", "itemCategories", "paymentTerms"}

// ValidateSupplierCreate validates a new supplier. itemCategories is treated
// as a set; repeated categories are collapsed.
func (v *Validator) ValidateSupplierCreate(in Input) (domain.Supplier, error) {
	r := newReader(in)
	r.require(supplierRequired...)
	contact := r.object("contact")
	if r.present("contact") {
		contact.require("phone")
	}
	terms := r.object("paymentTerms")
	if r.present("paymentTerms") {
		terms.require("method")
	}
	if err := r.missingError(); err != nil {
		return domain.Supplier{}, err
	}

	s := domain.Supplier{
		SupplierID: r.str("supplierId"),
		Name:       r.str("name"),
		Contact: domain.SupplierContact{
			Phone: contact.str("phone"),
			Email: contact.str("email"),
		},
		PaymentTerms: domain.PaymentTerms{
			Method:        terms.str("method"),
			AccountNumber: terms.str("accountNumber"),
		},
		Address: address(r.object("address")),
		Status:  domain.SupplierStatus(r.str("status")),
	}
	if cats := r.optStrings("itemCategories"); cats != nil {
		s.ItemCategories = categorySet(*cats)
	}
	if s.Status == "" {
		s.Status = domain.SupplierActive
	}
	if err := v.check(r, s); err != nil {
		return domain.Supplier{}, err
	}
	s.SupplierID = strings.ToUpper(s.SupplierID)
	s.Contact.Email = strings.ToLower(s.Contact.Email)
	return s, nil
}

// ValidateSupplierPatch validates the fields supplied in a supplier update.
func (v *Validator) ValidateSupplierPatch(in Input) (domain.SupplierPatch, error) {
	r := newReader(in)
	r.forbidEmpty(supplierRequired...)
	r.forbidEmpty("status")

	p := domain.SupplierPatch{
		SupplierID: r.optString("supplierId"),
		Name:       r.optString("name"),
		Status:     typedPtr[domain.SupplierStatus](r.optString("status")),
	}
	if r.present("contact") {
		contact := r.object("contact")
		contact.forbidEmpty("phone")
		p.Contact = &domain.SupplierContactPatch{
			Phone: contact.optString("phone"),
			Email: contact.optString("email"),
		}
	}
	if cats := r.optStrings("itemCategories"); cats != nil {
		set := categorySet(*cats)
		p.ItemCategories = &set
	}
	if r.present("paymentTerms") {
		terms := r.object("paymentTerms")
		terms.forbidEmpty("method")
		p.PaymentTerms = &domain.PaymentTermsPatch{
			Method:        terms.optString("method"),
			AccountNumber: terms.optString("accountNumber"),
		}
	}
	if r.present("address") {
		p.Address = addressPatch(r.object("address"))
	}
	if err := v.check(r, p); err != nil {
		return domain.SupplierPatch{}, err
	}
	upperPtr(p.SupplierID)
	if p.Contact != nil {
		lowerPtr(p.Contact.Email)
	}
	return p, nil
}

func categorySet(vals []string) []domain.ItemCategory {
	seen := make([]string, 0, len(vals))
	for _, v := range vals {
		if !slices.Contains(seen, v) {
			seen = append(seen, v)
		}
	}
	return typed[domain.ItemCategory](seen)
}
