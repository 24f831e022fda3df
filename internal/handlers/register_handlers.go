package handlers

import (
	"fmt"

	"github.com/SscSPs/biz_records_app/cmd/docs"
	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/SscSPs/biz_records_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	validator *validation.Validator,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := setupAPIRoutes(r, cfg, services, validator); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	v *validation.Validator,
) error {
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure login rate limit: %w", err)
	}

	api := r.Group("/api", middleware.RequestTimeout(cfg.RequestTimeout))
	prod := cfg.IsProduction

	registerAssetRoutes(api, service.Asset, v, prod)
	registerLiabilityRoutes(api, service.Liability, v, prod)
	registerIncomeRoutes(api, service.Income, v, prod)
	registerExpenseRoutes(api, service.Expense, v, prod)
	registerProductRoutes(api, service.Product, v, prod)
	registerSupplierRoutes(api, service.Supplier, v, prod)
	registerOrderRoutes(api, service.Order, v, prod)
	registerPromotionRoutes(api, service.Promotion, v, prod)
	registerFeedbackRoutes(api, service.Inquiry, service.Suggestion, v, prod)
	registerCustomerRoutes(api, service.Customer, v, prod,
		middleware.RateLimit(loginLimiter), middleware.AuthMiddleware(cfg.JWTSecret))
	registerDashboardRoutes(api, service.Dashboard, prod)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
