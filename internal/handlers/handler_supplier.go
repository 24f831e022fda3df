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

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	baseHandler
	supplierService portssvc.SupplierSvcFacade
}

// newSupplierHandler creates a new supplierHandler.
func newSupplierHandler(svc portssvc.SupplierSvcFacade, v *validation.Validator, isProduction bool) *supplierHandler {
	return &supplierHandler{
		baseHandler:     newBaseHandler("Supplier", v, isProduction),
		supplierService: svc,
	}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, svc portssvc.SupplierSvcFacade, v *validation.Validator, isProduction bool) {
	h := newSupplierHandler(svc, v, isProduction)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// createSupplier godoc
// @Summary Create a supplier
// @Description Adds a supplier; the supplierId must be unique
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body domain.Supplier true "Supplier details"
// @Success 201 {object} dto.DataResponse{data=domain.Supplier}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Supplier ID already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	supplier, err := h.validator.ValidateSupplierCreate(in)
	if err != nil {
		h.fail(c, err, "creating supplier")
		return
	}

	created, err := h.supplierService.CreateSupplier(c.Request.Context(), supplier)
	if err != nil {
		h.fail(c, err, "creating supplier")
		return
	}

	logger.Info("Supplier created successfully", slog.String("supplier_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Supplier created successfully", created))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves suppliers, newest first by default
// @Tags suppliers
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Supplier}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.supplierService.ListSuppliers(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching suppliers")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.DataResponse{data=domain.Supplier}
// @Failure 404 {object} dto.ErrorResponse "Supplier not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve supplier"
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	record, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching supplier")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Merges the supplied fields into the stored supplier; omitted fields keep their values
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Supplier ID"
// @Param   supplier body domain.Supplier true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Supplier}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Supplier not found"
// @Failure 409 {object} dto.ErrorResponse "Supplier ID already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to update supplier"
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateSupplierPatch(in)
	if err != nil {
		h.fail(c, err, "updating supplier")
		return
	}

	record, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating supplier")
		return
	}

	logger.Info("Supplier updated successfully", slog.String("supplier_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Supplier updated successfully", record))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.DataResponse{data=domain.Supplier}
// @Failure 404 {object} dto.ErrorResponse "Supplier not found"
// @Failure 409 {object} dto.ErrorResponse "Supplier still referenced by orders"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete supplier"
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.supplierService.DeleteSupplier(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting supplier")
		return
	}

	logger.Info("Supplier deleted successfully", slog.String("supplier_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Supplier deleted successfully", record))
}
