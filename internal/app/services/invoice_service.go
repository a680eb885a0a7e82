package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
	"github.com/yigit/courseadmin/internal/pkg/validation"
	"github.com/yigit/courseadmin/internal/pkg/viewcache"
)

const invoiceEntity = "invoice"

// InvoiceRepository is the invoice storage used by InvoiceService
type InvoiceRepository interface {
	Create(ctx context.Context, in *models.InvoiceInput, date time.Time) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in *models.InvoiceInput) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, f repositories.InvoiceFilter) ([]models.Invoice, error)
	Count(ctx context.Context, f repositories.InvoiceFilter) (int64, error)
}

// InvoiceService runs invoice form actions and invoice views
type InvoiceService struct {
	repo  InvoiceRepository
	views *viewcache.Cache
	now   func() time.Time
	log   zerolog.Logger
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(repo InvoiceRepository, views *viewcache.Cache) *InvoiceService {
	return &InvoiceService{
		repo:  repo,
		views: views,
		now:   time.Now,
		log:   logger.Component("invoice_service"),
	}
}

var invoiceViews = []string{AdminInvoicesPath, AdminPath}

// Create validates the form and inserts an invoice dated today (UTC)
func (s *InvoiceService) Create(ctx context.Context, form dto.InvoiceForm) FormResult[dto.InvoiceForm] {
	result := s.create(ctx, form)
	metrics.RecordFormAction(invoiceEntity, "create", result.Outcome.String())
	return result
}

func (s *InvoiceService) create(ctx context.Context, form dto.InvoiceForm) FormResult[dto.InvoiceForm] {
	input, errs := form.Decode()
	if errs.HasErrors() {
		return rejected(OutcomeInvalid, form, errs, MsgCreateInvoiceInvalid)
	}

	id, err := s.repo.Create(ctx, input, helpers.Today(s.now()))
	if errors.Is(err, apperrors.ErrCustomerNotFound) {
		return rejected(OutcomeInvalid, form, unknownCustomer(), MsgCreateInvoiceInvalid)
	}
	if err != nil {
		s.log.Error().Err(err).Str("customerID", input.CustomerID.String()).Msg("Failed to create invoice")
		return rejected(OutcomeFailed, form, nil, MsgCreateInvoiceFailed)
	}

	s.log.Info().Str("invoiceID", id.String()).Int("amount", input.AmountCents).Msg("Invoice created")
	s.views.Revalidate(ctx, invoiceViews...)
	return succeeded[dto.InvoiceForm](AdminInvoicesPath)
}

// Update validates the form and overwrites customer, amount and status of the invoice
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) FormResult[dto.InvoiceForm] {
	result := s.update(ctx, id, form)
	metrics.RecordFormAction(invoiceEntity, "update", result.Outcome.String())
	return result
}

func (s *InvoiceService) update(ctx context.Context, id uuid.UUID, form dto.InvoiceForm) FormResult[dto.InvoiceForm] {
	input, errs := form.Decode()
	if errs.HasErrors() {
		return rejected(OutcomeInvalid, form, errs, MsgUpdateInvoiceInvalid)
	}

	_, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, apperrors.ErrCustomerNotFound) {
		return rejected(OutcomeInvalid, form, unknownCustomer(), MsgUpdateInvoiceInvalid)
	}
	if err != nil {
		s.log.Error().Err(err).Str("invoiceID", id.String()).Msg("Failed to update invoice")
		return rejected(OutcomeFailed, form, nil, MsgUpdateInvoiceFailed)
	}

	s.views.Revalidate(ctx, invoiceViews...)
	return succeeded[dto.InvoiceForm](AdminInvoicesPath)
}

// unknownCustomer reports a customer id that passed validation but matches no customer row
func unknownCustomer() validation.FieldErrors {
	return validation.FieldErrors{"customerId": {dto.MsgInvoiceCustomer}}
}

// Delete removes an invoice. Deleting a missing invoice succeeds.
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) DeleteResult {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("invoiceID", id.String()).Msg("Failed to delete invoice")
		metrics.RecordFormAction(invoiceEntity, "delete", OutcomeFailed.String())
		return DeleteResult{Outcome: OutcomeFailed, Message: MsgDeleteInvoiceFailed}
	}

	s.views.Revalidate(ctx, invoiceViews...)
	metrics.RecordFormAction(invoiceEntity, "delete", OutcomeSuccess.String())
	return DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteInvoice}
}

// Get retrieves an invoice by id
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of invoices, cached under viewKey
func (s *InvoiceService) List(ctx context.Context, viewKey string, page helpers.Page, search string) (*dto.InvoiceListResponse, error) {
	return viewcache.Fetch(ctx, s.views, viewKey, func(ctx context.Context) (*dto.InvoiceListResponse, error) {
		filter := repositories.InvoiceFilter{Search: search, Offset: page.Offset(), Limit: page.Size}

		invoices, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &dto.InvoiceListResponse{
			Invoices:   invoices,
			Pagination: helpers.NewPaginationInfo(total, page),
		}, nil
	})
}
