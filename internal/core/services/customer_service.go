package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/utils"
	"github.com/google/uuid"
)

// TokenSettings configures the access tokens issued on login.
type TokenSettings struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// passwordMatches is swapped in tests to observe which hashes login compares.
var passwordMatches = utils.PasswordMatches

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	tokens       TokenSettings
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, tokens TokenSettings, opts ...ServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{customerRepo: repo, tokens: tokens}
	svc.apply(opts)
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) RegisterCustomer(ctx context.Context, reg domain.CustomerRegistration) (*domain.Customer, error) {
	hash, err := utils.HashPassword(reg.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationError("", apperrors.FieldViolation{
				Field:   "password",
				Message: "password must be at most 72 bytes",
			})
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := reg.Customer
	customer.ID = uuid.NewString()
	customer.PasswordHash = hash

	created, err := s.customerRepo.CreateCustomer(ctx, customer)
	if err != nil {
		s.logFailure(ctx, err, "Failed to register customer")
		return nil, fmt.Errorf("failed to register customer: %w", err)
	}

	s.LogInfo(ctx, "Customer registered", slog.String("customer_id", created.ID))
	return created, nil
}

func (s *customerService) Login(ctx context.Context, creds domain.Credentials) (*domain.Customer, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	customer, err := s.customerRepo.FindCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// keep response time independent of whether the email is registered
			passwordMatches(utils.DummyPasswordHash(), creds.Password)
			s.LogInfo(ctx, "Login rejected: unknown email")
			return nil, "", time.Time{}, apperrors.ErrUnauthenticated
		}
		s.LogError(ctx, err, "Failed to look up customer for login")
		return nil, "", time.Time{}, fmt.Errorf("failed to look up customer: %w", err)
	}

	if !passwordMatches(customer.PasswordHash, creds.Password) {
		s.LogInfo(ctx, "Login rejected: wrong password", slog.String("customer_id", customer.ID))
		return nil, "", time.Time{}, apperrors.ErrUnauthenticated
	}
	if !customer.IsActive {
		s.LogInfo(ctx, "Login rejected: inactive account", slog.String("customer_id", customer.ID))
		return nil, "", time.Time{}, apperrors.ErrUnauthenticated
	}

	token, expiresAt, err := utils.GenerateCustomerToken(customer.ID, string(customer.Role), s.tokens.Secret, s.tokens.Issuer, s.tokens.TTL, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to issue access token", slog.String("customer_id", customer.ID))
		return nil, "", time.Time{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.LogInfo(ctx, "Customer logged in", slog.String("customer_id", customer.ID))
	return customer, token, expiresAt, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get customer", slog.String("customer_id", id))
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateProfile(ctx context.Context, id string, patch domain.CustomerProfilePatch) (*domain.Customer, error) {
	return s.modify(ctx, id, "profile", patch.ApplyTo)
}

func (s *customerService) UpdateProfileImage(ctx context.Context, id string, image string) (*domain.Customer, error) {
	return s.modify(ctx, id, "profile image", func(c *domain.Customer) {
		c.ProfileImage = image
	})
}

func (s *customerService) modify(ctx context.Context, id, what string, apply func(*domain.Customer)) (*domain.Customer, error) {
	current, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load customer for update", slog.String("customer_id", id))
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}

	apply(current)

	updated, err := s.customerRepo.UpdateCustomer(ctx, *current)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update customer "+what, slog.String("customer_id", id))
		return nil, fmt.Errorf("failed to update customer %s: %w", id, err)
	}

	s.LogInfo(ctx, "Customer "+what+" updated", slog.String("customer_id", id))
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	deleted, err := s.customerRepo.DeleteCustomer(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to delete customer", slog.String("customer_id", id))
		return nil, fmt.Errorf("failed to delete customer %s: %w", id, err)
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", id))
	return deleted, nil
}
