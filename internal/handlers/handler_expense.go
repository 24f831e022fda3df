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

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	baseHandler
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(svc portssvc.ExpenseSvcFacade, v *validation.Validator, isProduction bool) *expenseHandler {
	return &expenseHandler{
		baseHandler:    newBaseHandler("Expense", v, isProduction),
		expenseService: svc,
	}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, svc portssvc.ExpenseSvcFacade, v *validation.Validator, isProduction bool) {
	h := newExpenseHandler(svc, v, isProduction)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create an expense
// @Description Records money spent
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body domain.Expense true "Expense details"
// @Success 201 {object} dto.DataResponse{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create expense"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	expense, err := h.validator.ValidateExpenseCreate(in)
	if err != nil {
		h.fail(c, err, "creating expense")
		return
	}

	created, err := h.expenseService.CreateExpense(c.Request.Context(), expense)
	if err != nil {
		h.fail(c, err, "creating expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Expense created successfully", created))
}

// listExpenses godoc
// @Summary List expenses
// @Description Retrieves expenses, newest first by default
// @Tags expenses
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.expenseService.ListExpenses(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching expenses")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.DataResponse{data=domain.Expense}
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve expense"
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	record, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching expense")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Merges the supplied fields into the stored expense; omitted fields keep their values
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Expense ID"
// @Param   expense body domain.Expense true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Expense}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update expense"
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateExpensePatch(in)
	if err != nil {
		h.fail(c, err, "updating expense")
		return
	}

	record, err := h.expenseService.UpdateExpense(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating expense")
		return
	}

	logger.Info("Expense updated successfully", slog.String("expense_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Expense updated successfully", record))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce  json
// @Param   id path string true "Expense ID"
// @Success 200 {object} dto.DataResponse{data=domain.Expense}
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete expense"
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.expenseService.DeleteExpense(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting expense")
		return
	}

	logger.Info("Expense deleted successfully", slog.String("expense_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Expense deleted successfully", record))
}
