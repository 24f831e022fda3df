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

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	baseHandler
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(svc portssvc.AssetSvcFacade, v *validation.Validator, isProduction bool) *assetHandler {
	return &assetHandler{
		baseHandler:  newBaseHandler("Asset", v, isProduction),
		assetService: svc,
	}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, svc portssvc.AssetSvcFacade, v *validation.Validator, isProduction bool) {
	h := newAssetHandler(svc, v, isProduction)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:id", h.getAsset)
		assets.PUT("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
	}
}

// createAsset godoc
// @Summary Create an asset
// @Description Records a business asset such as equipment or a vehicle
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body domain.Asset true "Asset details"
// @Success 201 {object} dto.DataResponse{data=domain.Asset}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create asset"
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	asset, err := h.validator.ValidateAssetCreate(in)
	if err != nil {
		h.fail(c, err, "creating asset")
		return
	}

	created, err := h.assetService.CreateAsset(c.Request.Context(), asset)
	if err != nil {
		h.fail(c, err, "creating asset")
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", created.ID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Asset created successfully", created))
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves assets, most recently purchased first by default
// @Tags assets
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]domain.Asset}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list assets"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	records, err := h.assetService.ListAssets(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching assets")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(records))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} dto.DataResponse{data=domain.Asset}
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve asset"
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	record, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching asset")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", record))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Merges the supplied fields into the stored asset; omitted fields keep their values
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id   path string     true "Asset ID"
// @Param   asset body domain.Asset true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=domain.Asset}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update asset"
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	patch, err := h.validator.ValidateAssetPatch(in)
	if err != nil {
		h.fail(c, err, "updating asset")
		return
	}

	record, err := h.assetService.UpdateAsset(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err, "updating asset")
		return
	}

	logger.Info("Asset updated successfully", slog.String("asset_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Asset updated successfully", record))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} dto.DataResponse{data=domain.Asset}
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete asset"
// @Router /assets/{id} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	record, err := h.assetService.DeleteAsset(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "deleting asset")
		return
	}

	logger.Info("Asset deleted successfully", slog.String("asset_id", id))
	c.JSON(http.StatusOK, dto.NewDataResponse("Asset deleted successfully", record))
}
