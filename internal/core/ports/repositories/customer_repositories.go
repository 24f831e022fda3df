package repositories

import (
	"context"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its ID.
	FindCustomerByID(ctx context.Context, id string) (*domain.Customer, error)

	// FindCustomerByEmail retrieves a customer by email address, ignoring case.
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// ListCustomers retrieves customer records in their default order.
	ListCustomers(ctx context.Context, opts domain.ListOptions) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// CreateCustomer persists a new customer. A reused email yields apperrors.ErrDuplicate.
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// UpdateCustomer replaces a stored customer. A missing record yields apperrors.ErrNotFound.
	UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// DeleteCustomer removes a customer and returns the removed record.
	DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
