package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

// BindForm decodes a urlencoded, multipart or JSON submission into obj without validating it.
// Field rules run later in the form's Decode so every failing field is reported at once.
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}
	return nil
}

// UUIDParam reads a UUID path parameter. A malformed value aborts the request with 400.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid identifier").
			WithField(name).
			WithDetails(c.Param(name))
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return uuid.Nil, false
	}
	return id, true
}
