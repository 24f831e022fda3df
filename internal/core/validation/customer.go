package validation

import (
	"strings"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

var (
	customerRequired = []string{"name", "email", "phone", "password", "address"}
	addressRequired  = []string{"street", "city", "state", "zipCode"}
)

// ValidateCustomerRegistration validates a sign-up request. Every customer
// starts with the CUSTOMER role, active, with membership dated now.
func (v *Validator) ValidateCustomerRegistration(in Input) (domain.CustomerRegistration, error) {
	r := newReader(in)
	r.require(customerRequired...)
	addr := r.object("address")
	if r.present("address") {
		addr.require(addressRequired...)
	}
	if err := r.missingError(); err != nil {
		return domain.CustomerRegistration{}, err
	}

	c := domain.Customer{
		Name:  r.str("name"),
		Email: r.str("email"),
		Phone: r.str("phone"),
		Address: domain.CustomerAddress{
			Street:  addr.str("street"),
			City:    addr.str("city"),
			State:   addr.str("state"),
			ZipCode: addr.str("zipCode"),
		},
		MembershipDate: v.now().UTC(),
		Role:           domain.RoleCustomer,
		IsActive:       true,
	}
	password := r.secret("password")
	v.checkVar(r, "password", password, "min=8")
	if err := v.check(r, c); err != nil {
		return domain.CustomerRegistration{}, err
	}
	c.Email = strings.ToLower(c.Email)
	return domain.CustomerRegistration{Customer: c, Password: password}, nil
}

// ValidateLogin validates a login request.
func (v *Validator) ValidateLogin(in Input) (domain.Credentials, error) {
	r := newReader(in)
	r.require("email", "password")
	if err := r.missingError(); err != nil {
		return domain.Credentials{}, err
	}
	creds := domain.Credentials{
		Email:    strings.ToLower(r.str("email")),
		Password: r.secret("password"),
	}
	if !r.errs.Empty() {
		return domain.Credentials{}, r.errs
	}
	return creds, nil
}

// ValidateCustomerProfile validates a self-service profile update.
func (v *Validator) ValidateCustomerProfile(in Input) (domain.CustomerProfilePatch, error) {
	r := newReader(in)
	r.forbidEmpty("name", "phone", "address")

	p := domain.CustomerProfilePatch{
		Name:  r.optString("name"),
		Phone: r.optString("phone"),
	}
	if r.present("address") {
		addr := r.object("address")
		addr.forbidEmpty(addressRequired...)
		p.Address = &domain.CustomerAddressPatch{
			Street:  addr.optString("street"),
			City:    addr.optString("city"),
			State:   addr.optString("state"),
			ZipCode: addr.optString("zipCode"),
		}
	}
	if err := v.check(r, p); err != nil {
		return domain.CustomerProfilePatch{}, err
	}
	return p, nil
}

// ValidateProfileImage validates a profile image update and returns the image location.
func (v *Validator) ValidateProfileImage(in Input) (string, error) {
	r := newReader(in)
	r.require("profileImage")
	if err := r.missingError(); err != nil {
		return "", err
	}
	image := r.str("profileImage")
	v.checkVar(r, "profileImage", image, "uri,max=500")
	if !r.errs.Empty() {
		return "", r.errs
	}
	return image, nil
}
