package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/middleware"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
)

// InvoiceActions is the invoice service surface used by InvoiceController
type InvoiceActions interface {
	Create(ctx context.Context, form dto.InvoiceForm) services.FormResult[dto.InvoiceForm]
	Update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) services.FormResult[dto.InvoiceForm]
	Delete(ctx context.Context, id uuid.UUID) services.DeleteResult
	Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, viewKey string, page helpers.Page, search string) (*dto.InvoiceListResponse, error)
}

// InvoiceController handles invoice pages and form actions
type InvoiceController struct {
	invoices InvoiceActions
	logger   zerolog.Logger
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(invoices InvoiceActions, logger zerolog.Logger) *InvoiceController {
	return &InvoiceController{invoices: invoices, logger: logger}
}

// CreateInvoice handles the create invoice form
// @Summary Create an invoice
// @Description Validates the submission and inserts an invoice dated today with the amount stored in cents
// @Tags invoices
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body dto.InvoiceForm true "Invoice form"
// @Success 303 "Redirect to /admin/invoices"
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.InvoiceFormState "Invalid fields"
// @Failure 500 {object} dto.InvoiceFormState "Database error"
// @Router /admin/invoices [post]
func (c *InvoiceController) CreateInvoice(ctx *gin.Context) {
	var form dto.InvoiceForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.logger.Warn().Err(err).Msg("Unreadable invoice submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondForm(ctx, c.invoices.Create(ctx.Request.Context(), form))
}

// UpdateInvoice handles the edit invoice form
// @Summary Update an invoice
// @Tags invoices
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Param request body dto.InvoiceForm true "Invoice form"
// @Success 303 "Redirect to /admin/invoices"
// @Failure 400 {object} dto.ErrorResponse "Malformed id or body"
// @Failure 422 {object} dto.InvoiceFormState "Invalid fields"
// @Failure 500 {object} dto.InvoiceFormState "Database error"
// @Router /admin/invoices/{id} [put]
func (c *InvoiceController) UpdateInvoice(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	var form dto.InvoiceForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.logger.Warn().Err(err).Str("invoiceID", id.String()).Msg("Unreadable invoice submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondForm(ctx, c.invoices.Update(ctx.Request.Context(), id, form))
}

// DeleteInvoice handles the delete invoice action
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {object} dto.MessageResponse "Deleted Invoice."
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 500 {object} dto.MessageResponse "Database error"
// @Router /admin/invoices/{id} [delete]
func (c *InvoiceController) DeleteInvoice(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	respondDelete(ctx, c.invoices.Delete(ctx.Request.Context(), id))
}

// ListInvoices returns a page of invoices with their customers
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Param query query string false "Search by customer, amount, date or status"
// @Success 200 {object} dto.APIResponse{data=dto.InvoiceListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/invoices [get]
func (c *InvoiceController) ListInvoices(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)

	list, err := c.invoices.List(ctx.Request.Context(), viewKey(ctx), page, ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}

// GetInvoice returns one invoice rendered as form values for editing
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.InvoiceForm}
// @Failure 400 {object} dto.ErrorResponse "Malformed id"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Router /admin/invoices/{id} [get]
func (c *InvoiceController) GetInvoice(ctx *gin.Context) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		return
	}

	invoice, err := c.invoices.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.InvoiceFromModel(invoice)))
}
