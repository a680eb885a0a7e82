package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/db"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// CustomerRepository reads customers and monthly revenue
type CustomerRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(conn db.DBTX) *CustomerRepository {
	return &CustomerRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns every customer ordered by name
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "image_url").
		From("customers").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list customers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list customers query")
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// Count returns the number of customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("customers").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count customers query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return total, nil
}

// Revenue returns the monthly revenue rows in calendar order
func (r *CustomerRepository) Revenue(ctx context.Context) ([]models.Revenue, error) {
	sql, args, err := r.sb.Select("month", "revenue").
		From("revenue").
		OrderBy("to_date(month, 'Mon')").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revenue query")
		return nil, fmt.Errorf("error querying revenue: %w", err)
	}
	defer rows.Close()

	revenue := []models.Revenue{}
	for rows.Next() {
		var rev models.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning revenue row: %w", err)
		}
		revenue = append(revenue, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", err)
	}
	return revenue, nil
}
