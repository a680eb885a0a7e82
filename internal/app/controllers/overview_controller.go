package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/middleware"
)

// OverviewReader is the overview service surface used by OverviewController
type OverviewReader interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	Customers(ctx context.Context) ([]models.Customer, error)
}

// OverviewController serves the admin landing page and the customer listing
type OverviewController struct {
	overview OverviewReader
}

// NewOverviewController creates a new OverviewController
func NewOverviewController(overview OverviewReader) *OverviewController {
	return &OverviewController{overview: overview}
}

// Overview returns the admin landing view
// @Summary Admin overview
// @Description Course counts, invoice totals in cents, customer count and monthly revenue
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverviewResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin [get]
func (c *OverviewController) Overview(ctx *gin.Context) {
	view, err := c.overview.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// Customers lists every customer
// @Summary List customers
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Customer}
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/customers [get]
func (c *OverviewController) Customers(ctx *gin.Context) {
	customers, err := c.overview.Customers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(customers))
}
