package domain

import "time"

// CustomerRole is the access role of a customer account.
type CustomerRole string

const (
	RoleCustomer CustomerRole = "CUSTOMER"
	RoleAdmin    CustomerRole = "ADMIN"
	RoleStaff    CustomerRole = "STAFF"
)

// CustomerAddress is the required postal address of a customer.
type CustomerAddress struct {
	Street  string `json:"street" validate:"max=100"`
	City    string `json:"city" validate:"max=50"`
	State   string `json:"state" validate:"max=50"`
	ZipCode string `json:"zipCode" validate:"zipcode"`
}

// Customer is a registered shopper. PasswordHash is a bcrypt hash and is
// never serialized.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"max=50"`
	Email          string          `json:"email" validate:"emailaddr"`
	Phone          string          `json:"phone" validate:"phone10"`
	Address        CustomerAddress `json:"address"`
	PasswordHash   string          `json:"-"`
	MembershipDate time.Time       `json:"membershipDate"`
	Role           CustomerRole    `json:"role" validate:"oneof=CUSTOMER ADMIN STAFF"`
	IsActive       bool            `json:"isActive"`
	ProfileImage   string          `json:"profileImage,omitempty"`
	Timestamps
}

// CustomerRegistration is a validated sign-up request; Password is plaintext
// until the service hashes it.
type CustomerRegistration struct {
	Customer Customer
	Password string `validate:"min=8"`
}

// CustomerAddressPatch carries the address sub-fields supplied in an update.
type CustomerAddressPatch struct {
	Street  *string `validate:"omitempty,max=100"`
	City    *string `validate:"omitempty,max=50"`
	State   *string `validate:"omitempty,max=50"`
	ZipCode *string `validate:"omitempty,zipcode"`
}

// CustomerProfilePatch carries the profile fields a customer may change.
type CustomerProfilePatch struct {
	Name    *string               `json:"name" validate:"omitempty,max=50"`
	Phone   *string               `json:"phone" validate:"omitempty,phone10"`
	Address *CustomerAddressPatch `json:"address"`
}

// ApplyTo merges the patch into c.
func (p CustomerProfilePatch) ApplyTo(c *Customer) {
	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Phone, p.Phone)
	if p.Address != nil {
		setIfPresent(&c.Address.Street, p.Address.Street)
		setIfPresent(&c.Address.City, p.Address.City)
		setIfPresent(&c.Address.State, p.Address.State)
		setIfPresent(&c.Address.ZipCode, p.Address.ZipCode)
	}
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
}
