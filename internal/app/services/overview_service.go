package services

import (
	"context"
	"fmt"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/viewcache"
)

// OverviewSources are the aggregates the admin overview is built from
type OverviewSources interface {
	CourseCounts(ctx context.Context) (models.CourseCounts, error)
	InvoiceTotals(ctx context.Context) (models.InvoiceTotals, error)
	CustomerCount(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) ([]models.Revenue, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// OverviewService builds the admin overview and customer listing
type OverviewService struct {
	src   OverviewSources
	views *viewcache.Cache
}

// NewOverviewService creates a new overview service instance
func NewOverviewService(src OverviewSources, views *viewcache.Cache) *OverviewService {
	return &OverviewService{src: src, views: views}
}

// Overview returns course counts, invoice totals, customer count and monthly revenue
func (s *OverviewService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	return viewcache.Fetch(ctx, s.views, AdminPath, func(ctx context.Context) (*dto.OverviewResponse, error) {
		var (
			out dto.OverviewResponse
			err error
		)
		if out.Courses, err = s.src.CourseCounts(ctx); err != nil {
			return nil, fmt.Errorf("course counts: %w", err)
		}
		if out.Invoices, err = s.src.InvoiceTotals(ctx); err != nil {
			return nil, fmt.Errorf("invoice totals: %w", err)
		}
		if out.CustomerCount, err = s.src.CustomerCount(ctx); err != nil {
			return nil, fmt.Errorf("customer count: %w", err)
		}
		if out.Revenue, err = s.src.Revenue(ctx); err != nil {
			return nil, fmt.Errorf("revenue: %w", err)
		}
		return &out, nil
	})
}

// Customers lists every customer, used to fill the invoice form
func (s *OverviewService) Customers(ctx context.Context) ([]models.Customer, error) {
	return viewcache.Fetch(ctx, s.views, AdminCustomerPath, s.src.ListCustomers)
}
