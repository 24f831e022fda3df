package services

import (
	"github.com/SscSPs/biz_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/platform/config"
)

// NewServiceContainer wires every service against the given repositories.
// cache may be nil when no summary cache is configured.
func NewServiceContainer(cfg *config.Config, repos repositories.RepositoryProvider, cache repositories.SummaryCache, opts ...ServiceOption) *portssvc.ServiceContainer {
	tokens := TokenSettings{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTExpiryDuration,
	}

	return &portssvc.ServiceContainer{
		Asset:      NewAssetService(repos.AssetRepo, opts...),
		Liability:  NewLiabilityService(repos.LiabilityRepo, opts...),
		Income:     NewIncomeService(repos.IncomeRepo, opts...),
		Expense:    NewExpenseService(repos.ExpenseRepo, opts...),
		Product:    NewProductService(repos.ProductRepo, opts...),
		Order:      NewOrderService(repos.OrderRepo, repos.SupplierRepo, opts...),
		Supplier:   NewSupplierService(repos.SupplierRepo, opts...),
		Promotion:  NewPromotionService(repos.PromotionRepo, opts...),
		Customer:   NewCustomerService(repos.CustomerRepo, tokens, opts...),
		Inquiry:    NewInquiryService(repos.InquiryRepo, opts...),
		Suggestion: NewSuggestionService(repos.SuggestionRepo, opts...),
		Dashboard:  NewDashboardService(repos, cache, cfg.DashboardCacheTTL, opts...),
	}
}
