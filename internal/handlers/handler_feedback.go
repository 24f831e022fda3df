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

// inquiryHandler and suggestionHandler serve customer feedback. Both address
// records by their public ID.
type inquiryHandler struct {
	baseHandler
	inquiryService portssvc.InquirySvcFacade
}

type suggestionHandler struct {
	baseHandler
	suggestionService portssvc.SuggestionSvcFacade
}

func registerFeedbackRoutes(rg *gin.RouterGroup, inquiries portssvc.InquirySvcFacade, suggestions portssvc.SuggestionSvcFacade, v *validation.Validator, isProduction bool) {
	ih := &inquiryHandler{baseHandler: newBaseHandler("Inquiry", v, isProduction), inquiryService: inquiries}
	sh := &suggestionHandler{baseHandler: newBaseHandler("Suggestion", v, isProduction), suggestionService: suggestions}

	inq := rg.Group("/inquiries")
	{
		inq.POST("", ih.submitInquiry)
		inq.GET("", ih.listInquiries)
		inq.GET("/:id", ih.getInquiry)
		inq.PUT("/:id/status", ih.updateInquiryStatus)
		inq.DELETE("/:id", ih.deleteInquiry)
	}

	sug := rg.Group("/suggestions")
	{
		sug.POST("", sh.submitSuggestion)
		sug.GET("", sh.listSuggestions)
		sug.GET("/:id", sh.getSuggestion)
		sug.PUT("/:id/status", sh.updateSuggestionStatus)
		sug.DELETE("/:id", sh.deleteSuggestion)
	}
}

// submitInquiry godoc
// @Summary Submit an inquiry
// @Description Stores a customer inquiry and assigns its public inquiryId
// @Tags inquiries
// @Accept  json
// @Produce  json
// @Param   inquiry body domain.Inquiry true "Inquiry details"
// @Success 201 {object} dto.DataResponse{data=dto.InquiryResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit inquiry"
// @Router /inquiries [post]
func (h *inquiryHandler) submitInquiry(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	inquiry, err := h.validator.ValidateInquiryCreate(in)
	if err != nil {
		h.fail(c, err, "submitting inquiry")
		return
	}

	created, err := h.inquiryService.SubmitInquiry(c.Request.Context(), inquiry)
	if err != nil {
		h.fail(c, err, "submitting inquiry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Inquiry submitted", slog.String("inquiry_id", created.InquiryID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Inquiry submitted successfully", dto.ToInquiryResponse(created)))
}

// listInquiries godoc
// @Summary List inquiries
// @Tags inquiries
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.InquiryResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Router /inquiries [get]
func (h *inquiryHandler) listInquiries(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	inquiries, err := h.inquiryService.ListInquiries(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching inquiries")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListInquiryResponse(inquiries)))
}

// getInquiry godoc
// @Summary Get an inquiry by its inquiryId
// @Tags inquiries
// @Produce  json
// @Param   id path string true "Public inquiry ID"
// @Success 200 {object} dto.DataResponse{data=dto.InquiryResponse}
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [get]
func (h *inquiryHandler) getInquiry(c *gin.Context) {
	inquiry, err := h.inquiryService.GetInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching inquiry")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", dto.ToInquiryResponse(inquiry)))
}

// updateInquiryStatus godoc
// @Summary Change an inquiry's status
// @Tags inquiries
// @Accept  json
// @Produce  json
// @Param   id     path string                  true "Public inquiry ID"
// @Param   status body dto.StatusUpdateRequest true "OPEN, IN_PROGRESS, RESOLVED or CLOSED"
// @Success 200 {object} dto.DataResponse{data=dto.InquiryResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id}/status [put]
func (h *inquiryHandler) updateInquiryStatus(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	status, err := h.validator.ValidateInquiryStatus(in)
	if err != nil {
		h.fail(c, err, "updating inquiry status")
		return
	}

	updated, err := h.inquiryService.UpdateInquiryStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.fail(c, err, "updating inquiry status")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Inquiry status updated successfully", dto.ToInquiryResponse(updated)))
}

// deleteInquiry godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Produce  json
// @Param   id path string true "Public inquiry ID"
// @Success 200 {object} dto.DataResponse{data=dto.InquiryResponse}
// @Failure 404 {object} dto.ErrorResponse "Inquiry not found"
// @Router /inquiries/{id} [delete]
func (h *inquiryHandler) deleteInquiry(c *gin.Context) {
	deleted, err := h.inquiryService.DeleteInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "deleting inquiry")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Inquiry deleted successfully", dto.ToInquiryResponse(deleted)))
}

// submitSuggestion godoc
// @Summary Submit a suggestion
// @Description Stores a customer suggestion and assigns its public suggestionId
// @Tags suggestions
// @Accept  json
// @Produce  json
// @Param   suggestion body domain.Suggestion true "Suggestion details"
// @Success 201 {object} dto.DataResponse{data=dto.SuggestionResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit suggestion"
// @Router /suggestions [post]
func (h *suggestionHandler) submitSuggestion(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	suggestion, err := h.validator.ValidateSuggestionCreate(in)
	if err != nil {
		h.fail(c, err, "submitting suggestion")
		return
	}

	created, err := h.suggestionService.SubmitSuggestion(c.Request.Context(), suggestion)
	if err != nil {
		h.fail(c, err, "submitting suggestion")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Suggestion submitted", slog.String("suggestion_id", created.SuggestionID))
	c.JSON(http.StatusCreated, dto.NewDataResponse("Suggestion submitted successfully", dto.ToSuggestionResponse(created)))
}

// listSuggestions godoc
// @Summary List suggestions
// @Tags suggestions
// @Produce  json
// @Param   limit  query int    false "Page size, 0 for all (max 500)"
// @Param   offset query int    false "Records to skip"
// @Param   sort   query string false "asc or desc"
// @Success 200 {object} dto.ListResponse{data=[]dto.SuggestionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination parameters"
// @Router /suggestions [get]
func (h *suggestionHandler) listSuggestions(c *gin.Context) {
	opts, ok := h.listOptions(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestionService.ListSuggestions(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, err, "fetching suggestions")
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToListSuggestionResponse(suggestions)))
}

// getSuggestion godoc
// @Summary Get a suggestion by its suggestionId
// @Tags suggestions
// @Produce  json
// @Param   id path string true "Public suggestion ID"
// @Success 200 {object} dto.DataResponse{data=dto.SuggestionResponse}
// @Failure 404 {object} dto.ErrorResponse "Suggestion not found"
// @Router /suggestions/{id} [get]
func (h *suggestionHandler) getSuggestion(c *gin.Context) {
	suggestion, err := h.suggestionService.GetSuggestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetching suggestion")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("", dto.ToSuggestionResponse(suggestion)))
}

// updateSuggestionStatus godoc
// @Summary Change a suggestion's status
// @Tags suggestions
// @Accept  json
// @Produce  json
// @Param   id     path string                  true "Public suggestion ID"
// @Param   status body dto.StatusUpdateRequest true "PENDING, REVIEWED, IMPLEMENTED or ARCHIVED"
// @Success 200 {object} dto.DataResponse{data=dto.SuggestionResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Suggestion not found"
// @Router /suggestions/{id}/status [put]
func (h *suggestionHandler) updateSuggestionStatus(c *gin.Context) {
	in, ok := h.decodeBody(c)
	if !ok {
		return
	}

	status, err := h.validator.ValidateSuggestionStatus(in)
	if err != nil {
		h.fail(c, err, "updating suggestion status")
		return
	}

	updated, err := h.suggestionService.UpdateSuggestionStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.fail(c, err, "updating suggestion status")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Suggestion status updated successfully", dto.ToSuggestionResponse(updated)))
}

// deleteSuggestion godoc
// @Summary Delete a suggestion
// @Tags suggestions
// @Produce  json
// @Param   id path string true "Public suggestion ID"
// @Success 200 {object} dto.DataResponse{data=dto.SuggestionResponse}
// @Failure 404 {object} dto.ErrorResponse "Suggestion not found"
// @Router /suggestions/{id} [delete]
func (h *suggestionHandler) deleteSuggestion(c *gin.Context) {
	deleted, err := h.suggestionService.DeleteSuggestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "deleting suggestion")
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse("Suggestion deleted successfully", dto.ToSuggestionResponse(deleted)))
}
