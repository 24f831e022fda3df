package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/biz_records_app/internal/apperrors"
	"github.com/SscSPs/biz_records_app/internal/dto"
	"github.com/SscSPs/biz_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const genericServerError = "Internal server error"

// statusFor maps an error from the service layer to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the response for err. entity names the record kind in
// not-found messages; action completes "Error ..." for server failures.
func errorBody(err error, status int, entity, action string, isProduction bool) dto.ErrorResponse {
	switch status {
	case http.StatusBadRequest:
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			return dto.ErrorResponse{Message: verr.Error(), Details: verr.Violations}
		}
		return dto.ErrorResponse{Message: err.Error()}
	case http.StatusNotFound:
		return dto.ErrorResponse{Message: entity + " not found"}
	case http.StatusConflict:
		var serr *apperrors.StateError
		if errors.As(err, &serr) {
			return dto.ErrorResponse{Message: serr.Message}
		}
		return dto.ErrorResponse{Message: err.Error()}
	case http.StatusUnauthorized:
		return dto.ErrorResponse{Message: "Invalid credentials"}
	case http.StatusGatewayTimeout:
		return dto.ErrorResponse{Message: "Request timed out"}
	}

	resp := dto.ErrorResponse{Message: "Error " + action, Error: genericServerError}
	if !isProduction {
		resp.Error = err.Error()
	}
	return resp
}

// fail writes the error response for err and logs it at a level matching the status.
func (b *baseHandler) fail(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.JSON(status, errorBody(err, status, b.entity, action, b.isProduction))
}

// badRequest writes a 400 that did not come from the service layer.
func badRequest(c *gin.Context, message string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Bad request", slog.String("reason", message))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message})
}
