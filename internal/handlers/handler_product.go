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

// productHandler handles HTTP requests related to products.
type productHandler struct {
	baseHandler
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(svc portssvc.ProductSvcFacade, v *validation.Validator, isProduction bool) *productHandler {
	return &productHandler{
		baseHandler:    newBaseHandler("Product", v, isProduction),
		productService: svc,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, svc portssvc.ProductSvcFacade, v *validation.Validator, isProduction bool) {
	h := newProductHandler(svc, v, isProduction)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a product to the catalog; the barcode must be unique
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body domain.Product true "Product details"
// @Success 201 {object} dto.DataResponse{data=domain.Product}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Barcode already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	product, err := h.validator.ValidateProductCreate(in)
	if err != nil {
		h.fail(c, err, "creating product")
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		h.fail(c, err, "creating product")
		return
	}

	logger.Info("Product created successfully", slog.String("product_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Product created successfully", created))
}

// listProducts godoc
// @Summary List products
// @Description Retrieves products, newest first by default
// @Tags products
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Product}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.productService.ListProducts(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching products")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.DataResponse{data=domain.Product}
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve product"
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	record, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching product")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateProduct godoc
// @Summary Update a product
// @Description Merges the supplied fields into the stored product; omitted fields keep their values
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Product ID"
// @Param   product body domain.Product true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Product}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 409 {object} dto.ErrorResponse "Barcode already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to update product"
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateProductPatch(in)
	if err != nil {
		h.fail(c, err, "updating product")
		return
	}

	record, err := h.productService.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating product")
		return
	}

	logger.Info("Product updated successfully", slog.String("product_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Product updated successfully", record))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.DataResponse{data=domain.Product}
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete product"
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting product")
		return
	}

	logger.Info("Product deleted successfully", slog.String("product_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Product deleted successfully", record))
}
