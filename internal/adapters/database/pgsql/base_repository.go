package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes mapped onto the error taxonomy.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	invalidTextRepr     = "22P02"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

type rowScanner interface {
	Scan(dest ...any) error
}

// now is the timestamp written to created_at/updated_at, truncated to the
// microsecond precision Postgres stores.
func (r *BaseRepository) now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// listQuery builds the paginated select for a table with its default order
// column. A zero limit binds NULL, which Postgres treats as no limit.
func (r *BaseRepository) listQuery(table, columns, orderColumn string, opts domain.ListOptions) (string, []any) {
	dir := "DESC"
	if opts.Ascending {
		dir = "ASC"
	}
	var limit any
	if opts.Limit > 0 {
		limit = opts.Limit
	}
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s %s, created_at %s, id %s LIMIT $1 OFFSET $2",
		columns, table, orderColumn, dir, dir, dir,
	)
	return query, []any{limit, opts.Offset}
}

// queryOne runs a single-row statement and maps pgx.ErrNoRows to apperrors.ErrNotFound.
func queryOne[T any](ctx context.Context, r *BaseRepository, scan func(rowScanner) (*T, error), query string, args ...any) (*T, error) {
	v, err := scan(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// queryByID is queryOne for statements keyed by a UUID primary key. An id
// that is not a UUID cannot name a row, so it is reported as not found
// without a round trip.
func queryByID[T any](ctx context.Context, r *BaseRepository, scan func(rowScanner) (*T, error), query, id string) (*T, error) {
	if uuid.Validate(id) != nil {
		return nil, apperrors.ErrNotFound
	}
	v, err := queryOne(ctx, r, scan, query, id)
	if isInvalidText(err) {
		return nil, apperrors.ErrNotFound
	}
	return v, err
}

func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepr
}

// queryAll runs a multi-row select and scans every row.
func queryAll[T any](ctx context.Context, r *BaseRepository, scan func(rowScanner) (*T, error), query string, args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// mapWriteError classifies constraint failures from an insert or update.
// what names the record for duplicate messages; refField is the field a
// foreign key failure is reported against.
func mapWriteError(err error, what, refField string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperrors.NewDuplicateError(what + " already exists")
		case foreignKeyViolation:
			return apperrors.NewValidationError("", apperrors.FieldViolation{
				Field:   refField,
				Message: refField + " does not reference an existing record",
			})
		case checkViolation:
			return apperrors.NewValidationError(fmt.Sprintf("constraint %s violated", pgErr.ConstraintName))
		case invalidTextRepr:
			return apperrors.NewValidationError("", apperrors.FieldViolation{
				Field:   refField,
				Message: refField + " does not reference an existing record",
			})
		}
	}
	return apperrors.NewAppError(500, "failed to write "+what, err)
}

// mapDeleteError classifies failures from a delete; a foreign key failure
// means the record is still referenced.
func mapDeleteError(err error, what string) error {
	if errors.Is(err, apperrors.ErrNotFound) || isInvalidText(err) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return apperrors.NewConflictError(what + " is still referenced by other records")
	}
	return apperrors.NewAppError(500, "failed to delete "+what, err)
}

func toStrings[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func fromStrings[T ~string](vals []string) []T {
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = T(v)
	}
	return out
}
