package pgsql

import (
	portsrepo "github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every Postgres-backed repository on one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:      newPgxAssetRepository(dbPool),
		LiabilityRepo:  newPgxLiabilityRepository(dbPool),
		IncomeRepo:     newPgxIncomeRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		ProductRepo:    newPgxProductRepository(dbPool),
		OrderRepo:      newPgxOrderRepository(dbPool),
		SupplierRepo:   newPgxSupplierRepository(dbPool),
		PromotionRepo:  newPgxPromotionRepository(dbPool),
		CustomerRepo:   newPgxCustomerRepository(dbPool),
		InquiryRepo:    newPgxInquiryRepository(dbPool),
		SuggestionRepo: newPgxSuggestionRepository(dbPool),
	}
}
