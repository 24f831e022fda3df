package services

import (
	"context"
	"time"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)

	// ListCustomers retrieves customers, newest members first by default.
	ListCustomers(ctx context.Context, opts domain.ListOptions) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// RegisterCustomer hashes the password and stores the customer.
	RegisterCustomer(ctx context.Context, reg domain.CustomerRegistration) (*domain.Customer, error)

	// UpdateProfile merges name, phone and address changes.
	UpdateProfile(ctx context.Context, id string, patch domain.CustomerProfilePatch) (*domain.Customer, error)

	// UpdateProfileImage sets the profile image location.
	UpdateProfileImage(ctx context.Context, id string, image string) (*domain.Customer, error)

	// DeleteCustomer removes a customer and returns it.
	DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// CustomerAuthSvc defines operations for customer authentication
type CustomerAuthSvc interface {
	// Login checks credentials and issues an access token. Unknown emails and
	// wrong passwords both yield apperrors.ErrUnauthenticated.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Customer, string, time.Time, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	CustomerAuthSvc
}
