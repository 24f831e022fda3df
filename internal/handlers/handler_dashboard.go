package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/biz_records_app/internal/core/ports/services"
	"github.com/SscSPs/biz_records_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	baseHandler
	dashboardService portssvc.DashboardSvc
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardSvc, isProduction bool) {
	h := &dashboardHandler{
		baseHandler:      newBaseHandler("Summary", nil, isProduction),
		dashboardService: svc,
	}

	rg.GET("/dashboard/summary", h.getSummary)
}

// getSummary godoc
// @Summary Business summary
// @Description Counts products, assets and liabilities and totals income, expenses and net worth
// @Tags dashboard
// @Produce  json
// @Param   fresh query bool false "Skip the cached snapshot"
// @Success 200 {object} dto.DataResponse{data=domain.Summary}
// @Failure 400 {object} dto.ErrorResponse "Invalid fresh flag"
// @Failure 500 {object} dto.ErrorResponse "Failed to build summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	fresh := false
	if raw := c.Query("fresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "fresh must be true or false")
			return
		}
		fresh = v
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), fresh)
	if err != nil {
		h.fail(c, err, "building dashboard summary")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", summary))
}
