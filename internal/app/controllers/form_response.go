// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
)

// respondForm writes a create or update result: 303 to the listing on success,
// 422 with the form state for rejected input and 500 for persistence failures.
func respondForm[T any](ctx *gin.Context, result services.FormResult[T]) {
	switch result.Outcome {
	case services.OutcomeSuccess:
		ctx.Redirect(http.StatusSeeOther, result.Redirect)
	case services.OutcomeInvalid, services.OutcomeDuplicate:
		ctx.JSON(http.StatusUnprocessableEntity, result.State)
	default:
		ctx.JSON(http.StatusInternalServerError, result.State)
	}
}

// respondDelete writes a delete result. Deletes never redirect.
func respondDelete(ctx *gin.Context, result services.DeleteResult) {
	status := http.StatusOK
	if result.Outcome != services.OutcomeSuccess {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, dto.MessageResponse{Message: result.Message})
}

// viewKey is the cache key of a listing: its path plus the raw query when present
func viewKey(ctx *gin.Context) string {
	key := ctx.Request.URL.Path
	if q := ctx.Request.URL.RawQuery; q != "" {
		key += "?" + q
	}
	return key
}
