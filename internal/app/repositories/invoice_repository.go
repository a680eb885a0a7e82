package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/db"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/dberrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// InvoiceCustomerConstraint is the foreign key from invoices to customers
const InvoiceCustomerConstraint = "invoices_customer_id_fkey"

var invoiceColumns = []string{
	"invoices.id", "invoices.customer_id", "invoices.amount", "invoices.status", "invoices.date",
	"customers.name", "customers.email",
}

// InvoiceFilter narrows an invoice listing
type InvoiceFilter struct {
	Search string
	Offset uint64
	Limit  int
}

// InvoiceRepository handles invoice database operations
type InvoiceRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(conn db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an invoice dated on the given day and returns its id
func (r *InvoiceRepository) Create(ctx context.Context, in *models.InvoiceInput, date time.Time) (uuid.UUID, error) {
	sql, args, err := r.sb.Insert("invoices").
		Columns("customer_id", "amount", "status", "date").
		Values(in.CustomerID, in.AmountCents, string(in.Status), date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create invoice query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err, InvoiceCustomerConstraint) {
			return uuid.Nil, apperrors.ErrCustomerNotFound
		}
		logger.Error().Err(err).Str("customerID", in.CustomerID.String()).Msg("Error executing create invoice query")
		return uuid.Nil, fmt.Errorf("error creating invoice: %w", err)
	}
	return id, nil
}

// Update overwrites customer, amount and status of an invoice and returns the affected row count
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, in *models.InvoiceInput) (int64, error) {
	sql, args, err := r.sb.Update("invoices").
		Set("customer_id", in.CustomerID).
		Set("amount", in.AmountCents).
		Set("status", string(in.Status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update invoice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, InvoiceCustomerConstraint) {
			return 0, apperrors.ErrCustomerNotFound
		}
		logger.Error().Err(err).Str("invoiceID", id.String()).Msg("Error executing update invoice query")
		return 0, fmt.Errorf("error updating invoice: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes an invoice and returns the affected row count
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	sql, args, err := r.sb.Delete("invoices").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete invoice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("invoiceID", id.String()).Msg("Error executing delete invoice query")
		return 0, fmt.Errorf("error deleting invoice: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *InvoiceRepository) selectJoined(columns ...string) squirrel.SelectBuilder {
	return r.sb.Select(columns...).
		From("invoices").
		Join("customers ON invoices.customer_id = customers.id")
}

// GetByID retrieves an invoice with its customer
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	sql, args, err := r.selectJoined(invoiceColumns...).
		Where(squirrel.Eq{"invoices.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get invoice query: %w", err)
	}

	inv, err := scanInvoice(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		logger.Error().Err(err).Str("invoiceID", id.String()).Msg("Error scanning invoice row")
		return nil, fmt.Errorf("error getting invoice by ID: %w", err)
	}
	return inv, nil
}

func applyInvoiceFilter(q squirrel.SelectBuilder, f InvoiceFilter) squirrel.SelectBuilder {
	if f.Search == "" {
		return q
	}
	pattern := containsPattern(f.Search)
	return q.Where(squirrel.Or{
		squirrel.ILike{"customers.name": pattern},
		squirrel.ILike{"customers.email": pattern},
		squirrel.ILike{"invoices.status": pattern},
		squirrel.Expr("invoices.amount::text ILIKE ?", pattern),
	})
}

// List returns one page of invoices, newest first
func (r *InvoiceRepository) List(ctx context.Context, f InvoiceFilter) ([]models.Invoice, error) {
	q := applyInvoiceFilter(r.selectJoined(invoiceColumns...), f).
		OrderBy("invoices.date DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit)).Offset(f.Offset)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list invoices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list invoices query")
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// Count returns the number of invoices matching the filter, ignoring paging
func (r *InvoiceRepository) Count(ctx context.Context, f InvoiceFilter) (int64, error) {
	sql, args, err := applyInvoiceFilter(r.selectJoined("COUNT(*)"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count invoices query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting invoices: %w", err)
	}
	return total, nil
}

// Totals sums invoice amounts per status
func (r *InvoiceRepository) Totals(ctx context.Context) (models.InvoiceTotals, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE status = ?), 0)", string(models.InvoiceStatusPaid))).
		Column(squirrel.Expr("COALESCE(SUM(amount) FILTER (WHERE status = ?), 0)", string(models.InvoiceStatusPending))).
		From("invoices").
		ToSql()
	if err != nil {
		return models.InvoiceTotals{}, fmt.Errorf("failed to build invoice totals query: %w", err)
	}

	var totals models.InvoiceTotals
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&totals.Count, &totals.Paid, &totals.Pending); err != nil {
		return models.InvoiceTotals{}, fmt.Errorf("error summing invoices: %w", err)
	}
	return totals, nil
}

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var (
		inv    models.Invoice
		status string
	)
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date, &inv.CustomerName, &inv.CustomerEmail)
	if err != nil {
		return nil, err
	}
	inv.Status = models.InvoiceStatus(status)
	return &inv, nil
}
