package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// HandleAPIError writes the error envelope for errors outside the form action contract
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrInvoiceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Invoice not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials.")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests, dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
