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

// liabilityHandler handles HTTP requests related to liabilities.
type liabilityHandler struct {
	baseHandler
	liabilityService portssvc.LiabilitySvcFacade
}

// newLiabilityHandler creates a new liabilityHandler.
func newLiabilityHandler(svc portssvc.LiabilitySvcFacade, v *validation.Validator, isProduction bool) *liabilityHandler {
	return &liabilityHandler{
		baseHandler:      newBaseHandler("Liability", v, isProduction),
		liabilityService: svc,
	}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, svc portssvc.LiabilitySvcFacade, v *validation.Validator, isProduction bool) {
	h := newLiabilityHandler(svc, v, isProduction)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.POST("", h.createLiability)
		liabilities.GET("", h.listLiabilities)
		liabilities.GET("/:id", h.getLiability)
		liabilities.PUT("/:id", h.updateLiability)
		liabilities.DELETE("/:id", h.deleteLiability)
	}
}

// createLiability godoc
// @Summary Create a liability
// @Description Records a loan or other obligation
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   liability body domain.Liability true "Liability details"
// @Success 201 {object} dto.DataResponse{data=domain.Liability}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create liability"
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	liability, err := h.validator.ValidateLiabilityCreate(in)
	if err != nil {
		h.fail(c, err, "creating liability")
		return
	}

	created, err := h.liabilityService.CreateLiability(c.Request.Context(), liability)
	if err != nil {
		h.fail(c, err, "creating liability")
		return
	}

	logger.Info("Liability created successfully", slog.String("liability_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Liability created successfully", created))
}

// listLiabilities godoc
// @Summary List liabilities
// @Description Retrieves liabilities, most recently started first by default
// @Tags liabilities
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Liability}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list liabilities"
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.liabilityService.ListLiabilities(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching liabilities")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getLiability godoc
// @Summary Get a liability by ID
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 200 {object} dto.DataResponse{data=domain.Liability}
// @Failure 404 {object} dto.ErrorResponse "Liability not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve liability"
// @Router /liabilities/{id} [get]
func (h *liabilityHandler) getLiability(c *gin.Context) {
	record, err := h.liabilityService.GetLiabilityByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching liability")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateLiability godoc
// @Summary Update a liability
// @Description Merges the supplied fields into the stored liability; omitted fields keep their values
// @Tags liabilities
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Liability ID"
// @Param   liability body domain.Liability true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Liability}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Liability not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update liability"
// @Router /liabilities/{id} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateLiabilityPatch(in)
	if err != nil {
		h.fail(c, err, "updating liability")
		return
	}

	record, err := h.liabilityService.UpdateLiability(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating liability")
		return
	}

	logger.Info("Liability updated successfully", slog.String("liability_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Liability updated successfully", record))
}

// deleteLiability godoc
// @Summary Delete a liability
// @Tags liabilities
// @Produce  json
// @Param   id path string true "Liability ID"
// @Success 200 {object} dto.DataResponse{data=domain.Liability}
// @Failure 404 {object} dto.ErrorResponse "Liability not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete liability"
// @Router /liabilities/{id} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.liabilityService.DeleteLiability(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting liability")
		return
	}

	logger.Info("Liability deleted successfully", slog.String("liability_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Liability deleted successfully", record))
}
