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

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	baseHandler
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(svc portssvc.OrderSvcFacade, v *validation.Validator, isProduction bool) *orderHandler {
	return &orderHandler{
		baseHandler:  newBaseHandler("Order", v, isProduction),
		orderService: svc,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, svc portssvc.OrderSvcFacade, v *validation.Validator, isProduction bool) {
	h := newOrderHandler(svc, v, isProduction)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create an order
// @Description Places a purchase order with an existing supplier; the order number must be unique
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body domain.Order true "Order details"
// @Success 201 {object} dto.DataResponse{data=dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Order number already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to create order"
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	order, err := h.validator.ValidateOrderCreate(in)
	if err != nil {
		h.fail(c, err, "creating order")
		return
	}

	created, err := h.orderService.CreateOrder(c.Request.Context(), order)
	if err != nil {
		h.fail(c, err, "creating order")
		return
	}

	logger.Info("Order created successfully", slog.String("order_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Order created successfully", dto.ToOrderResponse(created)))
}

// listOrders godoc
// @Summary List orders
// @Description Retrieves orders, newest first by default, each with its supplier's name and phone
// @Tags orders
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list orders"
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.orderService.ListOrders(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching orders")
		return
	}
	suppliers := h.orderService.SupplierSummaries(c.Request.Context(), records)

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListOrderResponseWithSuppliers(records, suppliers)))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.DataResponse{data=dto.OrderResponse}
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve order"
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	record, err := h.orderService.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching order")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", dto.ToOrderResponse(record)))
}

// updateOrder godoc
// @Summary Update an order
// @Description Merges the supplied fields into the stored order; omitted fields keep their values
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Order ID"
// @Param   order body domain.Order true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=dto.OrderResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Order number already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to update order"
// @Router /orders/{id} [put]
func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateOrderPatch(in)
	if err != nil {
		h.fail(c, err, "updating order")
		return
	}

	record, err := h.orderService.UpdateOrder(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating order")
		return
	}

	logger.Info("Order updated successfully", slog.String("order_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Order updated successfully", dto.ToOrderResponse(record)))
}

// deleteOrder godoc
// @Summary Delete an order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.DataResponse{data=dto.OrderResponse}
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete order"
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.orderService.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting order")
		return
	}

	logger.Info("Order deleted successfully", slog.String("order_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Order deleted successfully", dto.ToOrderResponse(record)))
}
