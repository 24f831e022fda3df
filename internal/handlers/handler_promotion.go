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

// promotionHandler handles HTTP requests related to promotions.
// Promotions are addressed by their code rather than their ID.
type promotionHandler struct {
	baseHandler
	promotionService portssvc.PromotionSvcFacade
}

func newPromotionHandler(svc portssvc.PromotionSvcFacade, v *validation.Validator, isProduction bool) *promotionHandler {
	return &promotionHandler{
		baseHandler:      newBaseHandler("Promotion", v, isProduction),
		promotionService: svc,
	}
}

func registerPromotionRoutes(rg *gin.RouterGroup, svc portssvc.PromotionSvcFacade, v *validation.Validator, isProduction bool) {
	h := newPromotionHandler(svc, v, isProduction)

	promotions := rg.Group("/promotions")
	{
		promotions.POST("", h.createPromotion)
		promotions.GET("", h.listPromotions)
		promotions.GET("/:promotionCode", h.getPromotion)
		promotions.PUT("/:promotionCode", h.updatePromotion)
		promotions.DELETE("/:promotionCode", h.deletePromotion)
	}
}

// createPromotion godoc
// @Summary Create a promotion
// @Description Creates a time-boxed discount; the end date must follow the start date and the code must be unique
// @Tags promotions
// @Accept  json
// @Produce  json
// @Param   promotion body domain.Promotion true "Promotion details"
// @Success 201 {object} dto.DataResponse{data=dto.PromotionResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Promotion code already in use"
// @Failure 500 {object} dto.ErrorResponse "Failed to create promotion"
// @Router /promotions [post]
func (h *promotionHandler) createPromotion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	promotion, err := h.validator.ValidatePromotionCreate(in)
	if err != nil {
		h.fail(c, err, "creating promotion")
		return
	}

	created, err := h.promotionService.CreatePromotion(c.Request.Context(), promotion)
	if err != nil {
		h.fail(c, err, "creating promotion")
		return
	}

	logger.Info("Promotion created successfully", slog.String("promotion_code", created.PromotionCode))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Promotion created successfully", dto.ToPromotionResponse(created)))
}

// listPromotions godoc
// @Summary List promotions
// @Description Retrieves promotions, latest start date first by default
// @Tags promotions
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.PromotionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list promotions"
// @Router /promotions [get]
func (h *promotionHandler) listPromotions(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	promotions, err := h.promotionService.ListPromotions(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching promotions")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListPromotionResponse(promotions)))
}

// getPromotion godoc
// @Summary Get a promotion by code
// @Description The code is matched case-insensitively
// @Tags promotions
// @Produce  json
// @Param   promotionCode path string true "Promotion code"
// @Success 200 {object} dto.DataResponse{data=dto.PromotionResponse}
// @Failure 404 {object} dto.ErrorResponse "Promotion not found"
// @Router /promotions/{promotionCode} [get]
func (h *promotionHandler) getPromotion(c *gin.Context) {
	promotion, err := h.promotionService.GetPromotionByCode(c.Request.Context(), c.Param("promotionCode"))
	if err != nil {
		h.fail(c, err, "fetching promotion")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", dto.ToPromotionResponse(promotion)))
}

// updatePromotion godoc
// @Summary Update a promotion
// @Description Merges the supplied fields; the date window is re-checked on the merged promotion
// @Tags promotions
// @Accept  json
// @Produce  json
// @Param   promotionCode path string           true "Promotion code"
// @Param   promotion     body domain.Promotion true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=dto.PromotionResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Promotion not found"
// @Failure 409 {object} dto.ErrorResponse "Promotion code already in use"
// @Router /promotions/{promotionCode} [put]
func (h *promotionHandler) updatePromotion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("promotionCode")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidatePromotionPatch(in)
	if err != nil {
		h.fail(c, err, "updating promotion")
		return
	}

	updated, err := h.promotionService.UpdatePromotion(c.Request.Context(), code, patch)
	if err != nil {
		h.fail(c, err, "updating promotion")
		return
	}

	logger.Info("Promotion updated successfully", slog.String("promotion_code", updated.PromotionCode))
	c.JSON(http.StatusOK, dto.NewDataResponse("Promotion updated successfully", dto.ToPromotionResponse(updated)))
}

// deletePromotion godoc
// @Summary Delete a promotion
// @Tags promotions
// @Produce  json
// @Param   promotionCode path string true "Promotion code"
// @Success 200 {object} dto.DataResponse{data=dto.PromotionResponse}
// @Failure 404 {object} dto.ErrorResponse "Promotion not found"
// @Router /promotions/{promotionCode} [delete]
func (h *promotionHandler) deletePromotion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleted, err := h.promotionService.DeletePromotion(c.Request.Context(), c.Param("promotionCode"))
	if err != nil {
		h.fail(c, err, "deleting promotion")
		return
	}

	logger.Info("Promotion deleted successfully", slog.String("promotion_code", deleted.PromotionCode))
	c.JSON(http.StatusOK, dto.NewDataResponse("Promotion deleted successfully", dto.ToPromotionResponse(deleted)))
}
