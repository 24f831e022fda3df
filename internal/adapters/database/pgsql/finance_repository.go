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

const assetColumns = `id, item_code, name, asset_type, purchase_date, initial_value, residual_value, useful_life_years, created_at, updated_at`

// PgxAssetRepository stores assets in the assets table.
type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.ID,
		&a.ItemCode,
		&a.Name,
		&a.AssetType,
		&a.PurchaseDate,
		&a.InitialValue,
		&a.ResidualValue,
		&a.UsefulLifeYears,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAssetRepository) CreateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	now := r.now()
	a.CreatedAt, a.UpdatedAt = now, now

	query := `INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + assetColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanAsset, query,
		a.ID,
		a.ItemCode,
		a.Name,
		a.AssetType,
		a.PurchaseDate,
		a.InitialValue,
		a.ResidualValue,
		a.UsefulLifeYears,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "asset", "")
	}
	return created, nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	a, err := queryByID(ctx, &r.BaseRepository, scanAsset, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", id, err)
	}
	return a, nil
}

func (r *PgxAssetRepository) ListAssets(ctx context.Context, opts domain.ListOptions) ([]domain.Asset, error) {
	query, args := r.listQuery("assets", assetColumns, "purchase_date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanAsset, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return records, nil
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	a.UpdatedAt = r.now()

	query := `UPDATE assets SET
			item_code = $2,
			name = $3,
			asset_type = $4,
			purchase_date = $5,
			initial_value = $6,
			residual_value = $7,
			useful_life_years = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + assetColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanAsset, query,
		a.ID,
		a.ItemCode,
		a.Name,
		a.AssetType,
		a.PurchaseDate,
		a.InitialValue,
		a.ResidualValue,
		a.UsefulLifeYears,
		a.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "asset", "")
	}
	return updated, nil
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, id string) (*domain.Asset, error) {
	query := `DELETE FROM assets WHERE id = $1 RETURNING ` + assetColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanAsset, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "asset")
	}
	return deleted, nil
}

const liabilityColumns = `id, item_code, name, liability_type, start_date, initial_amount, interest_rate, term_years, created_at, updated_at`

// PgxLiabilityRepository stores liabilities in the liabilities table.
type PgxLiabilityRepository struct {
	BaseRepository
}

func newPgxLiabilityRepository(pool *pgxpool.Pool) portsrepo.LiabilityRepositoryFacade {
	return &PgxLiabilityRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LiabilityRepositoryFacade = (*PgxLiabilityRepository)(nil)

func scanLiability(row rowScanner) (*domain.Liability, error) {
	var l domain.Liability
	err := row.Scan(
		&l.ID,
		&l.ItemCode,
		&l.Name,
		&l.LiabilityType,
		&l.StartDate,
		&l.InitialAmount,
		&l.InterestRate,
		&l.TermYears,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgxLiabilityRepository) CreateLiability(ctx context.Context, l domain.Liability) (*domain.Liability, error) {
	now := r.now()
	l.CreatedAt, l.UpdatedAt = now, now

	query := `INSERT INTO liabilities (` + liabilityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + liabilityColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanLiability, query,
		l.ID,
		l.ItemCode,
		l.Name,
		l.LiabilityType,
		l.StartDate,
		l.InitialAmount,
		l.InterestRate,
		l.TermYears,
		l.CreatedAt,
		l.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "liability", "")
	}
	return created, nil
}

func (r *PgxLiabilityRepository) FindLiabilityByID(ctx context.Context, id string) (*domain.Liability, error) {
	query := `SELECT ` + liabilityColumns + ` FROM liabilities WHERE id = $1`
	l, err := queryByID(ctx, &r.BaseRepository, scanLiability, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find liability by ID %s: %w", id, err)
	}
	return l, nil
}

func (r *PgxLiabilityRepository) ListLiabilities(ctx context.Context, opts domain.ListOptions) ([]domain.Liability, error) {
	query, args := r.listQuery("liabilities", liabilityColumns, "start_date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanLiability, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	return records, nil
}

func (r *PgxLiabilityRepository) UpdateLiability(ctx context.Context, l domain.Liability) (*domain.Liability, error) {
	l.UpdatedAt = r.now()

	query := `UPDATE liabilities SET
			item_code = $2,
			name = $3,
			liability_type = $4,
			start_date = $5,
			initial_amount = $6,
			interest_rate = $7,
			term_years = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + liabilityColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanLiability, query,
		l.ID,
		l.ItemCode,
		l.Name,
		l.LiabilityType,
		l.StartDate,
		l.InitialAmount,
		l.InterestRate,
		l.TermYears,
		l.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "liability", "")
	}
	return updated, nil
}

func (r *PgxLiabilityRepository) DeleteLiability(ctx context.Context, id string) (*domain.Liability, error) {
	query := `DELETE FROM liabilities WHERE id = $1 RETURNING ` + liabilityColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanLiability, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "liability")
	}
	return deleted, nil
}

const incomeColumns = `id, title, amount, category, description, payment_type, date, created_at, updated_at`

// PgxIncomeRepository stores incomes in the incomes table.
type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func scanIncome(row rowScanner) (*domain.Income, error) {
	var i domain.Income
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Amount,
		&i.Category,
		&i.Description,
		&i.PaymentType,
		&i.Date,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *PgxIncomeRepository) CreateIncome(ctx context.Context, i domain.Income) (*domain.Income, error) {
	now := r.now()
	i.CreatedAt, i.UpdatedAt = now, now

	query := `INSERT INTO incomes (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + incomeColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanIncome, query,
		i.ID,
		i.Title,
		i.Amount,
		i.Category,
		i.Description,
		i.PaymentType,
		i.Date,
		i.CreatedAt,
		i.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "income", "")
	}
	return created, nil
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, id string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE id = $1`
	i, err := queryByID(ctx, &r.BaseRepository, scanIncome, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find income by ID %s: %w", id, err)
	}
	return i, nil
}

func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, opts domain.ListOptions) ([]domain.Income, error) {
	query, args := r.listQuery("incomes", incomeColumns, "date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanIncome, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return records, nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, i domain.Income) (*domain.Income, error) {
	i.UpdatedAt = r.now()

	query := `UPDATE incomes SET
			title = $2,
			amount = $3,
			category = $4,
			description = $5,
			payment_type = $6,
			date = $7,
			updated_at = $8
		WHERE id = $1
		RETURNING ` + incomeColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanIncome, query,
		i.ID,
		i.Title,
		i.Amount,
		i.Category,
		i.Description,
		i.PaymentType,
		i.Date,
		i.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "income", "")
	}
	return updated, nil
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, id string) (*domain.Income, error) {
	query := `DELETE FROM incomes WHERE id = $1 RETURNING ` + incomeColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanIncome, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "income")
	}
	return deleted, nil
}

const expenseColumns = `id, title, amount, category, description, payment_type, date, created_at, updated_at`

// PgxExpenseRepository stores expenses in the expenses table.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Amount,
		&e.Category,
		&e.Description,
		&e.PaymentType,
		&e.Date,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	now := r.now()
	e.CreatedAt, e.UpdatedAt = now, now

	query := `INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + expenseColumns

	created, err := queryOne(ctx, &r.BaseRepository, scanExpense, query,
		e.ID,
		e.Title,
		e.Amount,
		e.Category,
		e.Description,
		e.PaymentType,
		e.Date,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "expense", "")
	}
	return created, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	e, err := queryByID(ctx, &r.BaseRepository, scanExpense, query, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", id, err)
	}
	return e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, opts domain.ListOptions) ([]domain.Expense, error) {
	query, args := r.listQuery("expenses", expenseColumns, "date", opts)
	records, err := queryAll(ctx, &r.BaseRepository, scanExpense, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return records, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	e.UpdatedAt = r.now()

	query := `UPDATE expenses SET
			title = $2,
			amount = $3,
			category = $4,
			description = $5,
			payment_type = $6,
			date = $7,
			updated_at = $8
		WHERE id = $1
		RETURNING ` + expenseColumns

	updated, err := queryOne(ctx, &r.BaseRepository, scanExpense, query,
		e.ID,
		e.Title,
		e.Amount,
		e.Category,
		e.Description,
		e.PaymentType,
		e.Date,
		e.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err, "expense", "")
	}
	return updated, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, id string) (*domain.Expense, error) {
	query := `DELETE FROM expenses WHERE id = $1 RETURNING ` + expenseColumns
	deleted, err := queryByID(ctx, &r.BaseRepository, scanExpense, query, id)
	if err != nil {
		return nil, mapDeleteError(err, "expense")
	}
	return deleted, nil
}
