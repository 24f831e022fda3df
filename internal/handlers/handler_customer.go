package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/dto"
	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles registration, login and customer self-service.
type customerHandler struct {
	baseHandler
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(svc portssvc.CustomerSvcFacade, v *validation.Validator, isProduction bool) *customerHandler {
	return &customerHandler{
		baseHandler:     newBaseHandler("Customer", v, isProduction),
		customerService: svc,
	}
}

// registerCustomerRoutes registers customer routes. loginGuard throttles login
// attempts; auth authenticates the self-service routes.
func registerCustomerRoutes(rg *gin.RouterGroup, svc portssvc.CustomerSvcFacade, v *validation.Validator, isProduction bool, loginGuard, auth gin.HandlerFunc) {
	h := newCustomerHandler(svc, v, isProduction)
	self := middleware.RequireSelf("id")

	customers := rg.Group("/customers")
	{
		customers.POST("", h.registerCustomer)
		customers.POST("/login", loginGuard, h.login)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", auth, self, h.getCustomer)
		customers.PUT("/:id", auth, self, h.updateProfile)
		customers.PUT("/:id/profile-image", auth, self, h.updateProfileImage)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

// registerCustomer godoc
// @Summary Register a customer
// @Description Creates a customer account; the email must not already be registered
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.RegisterCustomerRequest true "Registration details"
// @Success 201 {object} dto.DataResponse{data=dto.CustomerResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Failed to register customer"
// @Router /customers [post]
func (h *customerHandler) registerCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	reg, err := h.validator.ValidateCustomerRegistration(in)
	if err != nil {
		h.fail(c, err, "registering customer")
		return
	}

	customer, err := h.customerService.RegisterCustomer(c.Request.Context(), reg)
	if err != nil {
		h.fail(c, err, "registering customer")
		return
	}

	logger.Info("Customer registered successfully", slog.String("customer_id", customer.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Customer registered successfully", dto.ToCustomerResponse(customer)))
}

// login godoc
// @Summary Log in
// @Description Checks email and password and issues a bearer token
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many login attempts"
// @Router /customers/login [post]
func (h *customerHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	creds, err := h.validator.ValidateLogin(in)
	if err != nil {
		h.fail(c, err, "logging in")
		return
	}

	customer, token, expiresAt, err := h.customerService.Login(c.Request.Context(), creds)
	if err != nil {
		h.fail(c, err, "logging in")
		return
	}

	logger.Info("Customer logged in", slog.String("customer_id", customer.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		Data:      dto.ToCustomerResponse(customer),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves customers, newest members first by default
// @Tags customers
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.CustomerResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching customers")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListCustomerResponse(customers)))
}

// getCustomer godoc
// @Summary Get own customer profile
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.DataResponse{data=dto.CustomerResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another customer"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching customer")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", dto.ToCustomerResponse(customer)))
}

// updateProfile godoc
// @Summary Update own profile
// @Description Merges name, phone and address changes
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id      path string                      true "Customer ID"
// @Param   profile body dto.RegisterCustomerRequest true "Fields to change (name, phone, address)"
// @Success 200 {object} dto.DataResponse{data=dto.CustomerResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another customer"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateProfile(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateCustomerProfile(in)
	if err != nil {
		h.fail(c, err, "updating profile")
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err, "updating profile")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Profile updated successfully", dto.ToCustomerResponse(customer)))
}

// updateProfileImage godoc
// @Summary Set own profile image
// @Description Stores the location of an already uploaded image
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id    path string                  true "Customer ID"
// @Param   image body dto.ProfileImageRequest true "Image location"
// @Success 200 {object} dto.DataResponse{data=dto.CustomerResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Token belongs to another customer"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id}/profile-image [put]
func (h *customerHandler) updateProfileImage(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	image, err := h.validator.ValidateProfileImage(in)
	if err != nil {
		h.fail(c, err, "updating profile image")
		return
	}

	customer, err := h.customerService.UpdateProfileImage(c.Request.Context(), c.Param("id"), image)
	if err != nil {
		h.fail(c, err, "updating profile image")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Profile image updated successfully", dto.ToCustomerResponse(customer)))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.DataResponse{data=dto.CustomerResponse}
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	customer, err := h.customerService.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting customer")
		return
	}

	logger.Info("Customer deleted successfully", slog.String("customer_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Customer deleted successfully", dto.ToCustomerResponse(customer)))
}
