package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Asset      AssetSvcFacade
	Liability  LiabilitySvcFacade
	Income     IncomeSvcFacade
	Expense    ExpenseSvcFacade
	Product    ProductSvcFacade
	Order      OrderSvcFacade
	Supplier   SupplierSvcFacade
	Promotion  PromotionSvcFacade
	Customer   CustomerSvcFacade
	Inquiry    InquirySvcFacade
	Suggestion SuggestionSvcFacade
	Dashboard  DashboardSvc
}
