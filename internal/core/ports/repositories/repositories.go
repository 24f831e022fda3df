package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AssetRepo      AssetRepositoryFacade
	LiabilityRepo  LiabilityRepositoryFacade
	IncomeRepo     IncomeRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	ProductRepo    ProductRepositoryFacade
	OrderRepo      OrderRepositoryFacade
	SupplierRepo   SupplierRepositoryFacade
	PromotionRepo  PromotionRepositoryFacade
	CustomerRepo   CustomerRepositoryFacade
	InquiryRepo    InquiryRepositoryFacade
	SuggestionRepo SuggestionRepositoryFacade
}
