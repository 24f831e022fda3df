package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, name, email, phone, address, password_hash, membership_date, role, is_active, profile_image, created_at, updated_at`

// PgxCustomerRepository stores customers in the customers table.
type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.PasswordHash,
		&c.MembershipDate,
		&c.Role,
		&c.IsActive,
		&c.ProfileImage,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) CreateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	now := r.now()
	c.CreatedAt, c.UpdatedAt = now, now

	query := `INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + customerColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanCustomer, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.PasswordHash,
		c.MembershipDate,
		c.Role,
		c.IsActive,
		c.ProfileImage,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "customer with this email", "")
	}
	return created, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := queryByID(ctx, &r.BaseRepository, scanCustomer, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", id, err)
	}
	return c, nil
}

func (r *PgxCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE LOWER(email) = LOWER($1)`
	c, err := queryOne(ctx, &r.BaseRepository, scanCustomer, query, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	return c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]domain.Customer, error) {
	query, args := r.listQuery("customers", customerColumns, "membership_date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanCustomer, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return records, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	c.UpdatedAt = r.now()

	query := `UPDATE customers SET
			name = $2,
			email = $3,
			phone = $4,
			address = $5,
			password_hash = $6,
			membership_date = $7,
			role = $8,
			is_active = $9,
			profile_image = $10,
			updated_at = $11
		WHERE id = $1
		RETURNING ` + customerColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanCustomer, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.PasswordHash,
		c.MembershipDate,
		c.Role,
		c.IsActive,
		c.ProfileImage,
		c.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "customer with this email", "")
	}
	return updated, nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	query := `DELETE FROM customers WHERE id = $1 RETURNING ` + customerColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanCustomer, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "customer with this email")
	}
	return deleted, nil
}

const inquiryColumns = `id, inquiry_id, name, email, phone, description, type, status, created_at, updated_at`

// PgxInquiryRepository stores inquiries in the inquiries table.
type PgxInquiryRepository struct {
	BaseRepository
}

func newPgxInquiryRepository(pool *pgxpool.Pool) portsrepo.InquiryRepositoryFacade {
	return &PgxInquiryRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InquiryRepositoryFacade = (*PgxInquiryRepository)(nil)

func scanInquiry(row rowScanner) (*domain.Inquiry, error) {
	var i domain.Inquiry
	err := row.Scan(
		&i.ID,
		&i.InquiryID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.Description,
		&i.Type,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *PgxInquiryRepository) CreateInquiry(ctx context.Context, i domain.Inquiry) (*domain.Inquiry, error) {
	now := r.now()
	i.CreatedAt, i.UpdatedAt = now, now

	query := `INSERT INTO inquiries (` + inquiryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + inquiryColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanInquiry, query,
		i.ID,
		i.InquiryID,
		i.Name,
		i.Email,
		i.Phone,
		i.Description,
		i.Type,
		i.Status,
		i.CreatedAt,
		i.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "inquiry", "")
	}
	return created, nil
}

func (r *PgxInquiryRepository) FindInquiryByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	i, err := queryByID(ctx, &r.BaseRepository, scanInquiry, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inquiry by ID %s: %w", id, err)
	}
	return i, nil
}

func (r *PgxInquiryRepository) FindInquiryByInquiryID(ctx context.Context, inquiryID string) (*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE inquiry_id = $1`
	i, err := queryOne(ctx, &r.BaseRepository, scanInquiry, query, inquiryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find inquiry %s: %w", inquiryID, err)
	}
	return i, nil
}

func (r *PgxInquiryRepository) ListInquiries(ctx context.Context, opts domain.ListOptions) ([]domain.Inquiry, error) {
	query, args := r.listQuery("inquiries", inquiryColumns, "created_at", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanInquiry, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return records, nil
}

func (r *PgxInquiryRepository) UpdateInquiry(ctx context.Context, i domain.Inquiry) (*domain.Inquiry, error) {
	i.UpdatedAt = r.now()

	query := `UPDATE inquiries SET
			inquiry_id = $2,
			name = $3,
			email = $4,
			phone = $5,
			description = $6,
			type = $7,
			status = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + inquiryColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanInquiry, query,
		i.ID,
		i.InquiryID,
		i.Name,
		i.Email,
		i.Phone,
		i.Description,
		i.Type,
		i.Status,
		i.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "inquiry", "")
	}
	return updated, nil
}

func (r *PgxInquiryRepository) DeleteInquiry(ctx context.Context, id string) (*domain.Inquiry, error) {
	query := `DELETE FROM inquiries WHERE id = $1 RETURNING ` + inquiryColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanInquiry, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "inquiry")
	}
	return deleted, nil
}

const suggestionColumns = `id, suggestion_id, name, email, phone, description, submitted_date, status, created_at, updated_at`

// PgxSuggestionRepository stores suggestions in the suggestions table.
type PgxSuggestionRepository struct {
	BaseRepository
}

func newPgxSuggestionRepository(pool *pgxpool.Pool) portsrepo.SuggestionRepositoryFacade {
	return &PgxSuggestionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SuggestionRepositoryFacade = (*PgxSuggestionRepository)(nil)

func scanSuggestion(row rowScanner) (*domain.Suggestion, error) {
	var s domain.Suggestion
	err := row.Scan(
		&s.ID,
		&s.SuggestionID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Description,
		&s.SubmittedDate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSuggestionRepository) CreateSuggestion(ctx context.Context, s domain.Suggestion) (*domain.Suggestion, error) {
	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now

	query := `INSERT INTO suggestions (` + suggestionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + suggestionColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanSuggestion, query,
		s.ID,
		s.SuggestionID,
		s.Name,
		s.Email,
		s.Phone,
		s.Description,
		s.SubmittedDate,
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "suggestion", "")
	}
	return created, nil
}

func (r *PgxSuggestionRepository) FindSuggestionByID(ctx context.Context, id string) (*domain.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM suggestions WHERE id = $1`
	s, err := queryByID(ctx, &r.BaseRepository, scanSuggestion, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find suggestion by ID %s: %w", id, err)
	}
	return s, nil
}

func (r *PgxSuggestionRepository) FindSuggestionBySuggestionID(ctx context.Context, suggestionID string) (*domain.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM suggestions WHERE suggestion_id = $1`
	s, err := queryOne(ctx, &r.BaseRepository, scanSuggestion, query, suggestionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find suggestion %s: %w", suggestionID, err)
	}
	return s, nil
}

func (r *PgxSuggestionRepository) ListSuggestions(ctx context.Context, opts domain.ListOptions) ([]domain.Suggestion, error) {
	query, args := r.listQuery("suggestions", suggestionColumns, "submitted_date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanSuggestion, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return records, nil
}

func (r *PgxSuggestionRepository) UpdateSuggestion(ctx context.Context, s domain.Suggestion) (*domain.Suggestion, error) {
	s.UpdatedAt = r.now()

	query := `UPDATE suggestions SET
			suggestion_id = $2,
			name = $3,
			email = $4,
			phone = $5,
			description = $6,
			submitted_date = $7,
			status = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + suggestionColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanSuggestion, query,
		s.ID,
		s.SuggestionID,
		s.Name,
		s.Email,
		s.Phone,
		s.Description,
		s.SubmittedDate,
		s.Status,
		s.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "suggestion", "")
	}
	return updated, nil
}

func (r *PgxSuggestionRepository) DeleteSuggestion(ctx context.Context, id string) (*domain.Suggestion, error) {
	query := `DELETE FROM suggestions WHERE id = $1 RETURNING ` + suggestionColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanSuggestion, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "suggestion")
	}
	return deleted, nil
}
