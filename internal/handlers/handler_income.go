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

// incomeHandler handles HTTP requests related to income records.
type incomeHandler struct {
	baseHandler
	incomeService portssvc.IncomeSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(svc portssvc.IncomeSvcFacade, v *validation.Validator, isProduction bool) *incomeHandler {
	return &incomeHandler{
		baseHandler:   newBaseHandler("Income record", v, isProduction),
		incomeService: svc,
	}
}

// registerIncomeRoutes registers routes related to income records.
func registerIncomeRoutes(rg *gin.RouterGroup, svc portssvc.IncomeSvcFacade, v *validation.Validator, isProduction bool) {
	h := newIncomeHandler(svc, v, isProduction)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.GET("/:id", h.getIncome)
		incomes.PUT("/:id", h.updateIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Create an income record
// @Description Records money received
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   income body domain.Income true "Income record details"
// @Success 201 {object} dto.DataResponse{data=domain.Income}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create income record"
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	income, err := h.validator.ValidateIncomeCreate(in)
	if err != nil {
		h.fail(c, err, "creating income record")
		return
	}

	created, err := h.incomeService.CreateIncome(c.Request.Context(), income)
	if err != nil {
		h.fail(c, err, "creating income record")
		return
	}

	logger.Info("Income record created successfully", slog.String("income_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Income record created successfully", created))
}

// listIncomes godoc
// @Summary List income records
// @Description Retrieves income records, newest first by default
// @Tags incomes
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Income}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list income records"
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.incomeService.ListIncomes(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching income records")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getIncome godoc
// @Summary Get an income record by ID
// @Tags incomes
// @Produce  json
// @Param   id path string true "Income record ID"
// @Success 200 {object} dto.DataResponse{data=domain.Income}
// @Failure 404 {object} dto.ErrorResponse "Income record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve income record"
// @Router /incomes/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	record, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching income record")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateIncome godoc
// @Summary Update an income record
// @Description Merges the supplied fields into the stored income record; omitted fields keep their values
// @Tags incomes
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Income record ID"
// @Param   income body domain.Income true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Income}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Income record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update income record"
// @Router /incomes/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateIncomePatch(in)
	if err != nil {
		h.fail(c, err, "updating income record")
		return
	}

	record, err := h.incomeService.UpdateIncome(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating income record")
		return
	}

	logger.Info("Income record updated successfully", slog.String("income_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Income record updated successfully", record))
}

// deleteIncome godoc
// @Summary Delete an income record
// @Tags incomes
// @Produce  json
// @Param   id path string true "Income record ID"
// @Success 200 {object} dto.DataResponse{data=domain.Income}
// @Failure 404 {object} dto.ErrorResponse "Income record not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete income record"
// @Router /incomes/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.incomeService.DeleteIncome(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting income record")
		return
	}

	logger.Info("Income record deleted successfully", slog.String("income_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Income record deleted successfully", record))
}
