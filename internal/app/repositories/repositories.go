package repositories

import (
	"context"
	"strings"

	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	Courses   *CourseRepository
	Invoices  *InvoiceRepository
	Customers *CustomerRepository
	Users     *UserRepository
}

// NewRepositories initializes all repositories over one connection handle
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		Courses:   NewCourseRepository(conn),
		Invoices:  NewInvoiceRepository(conn),
		Customers: NewCustomerRepository(conn),
		Users:     NewUserRepository(conn),
	}
}

// CourseCounts returns total and active course counts
func (r *Repositories) CourseCounts(ctx context.Context) (models.CourseCounts, error) {
	return r.Courses.Counts(ctx)
}

// InvoiceTotals sums invoice amounts per status
func (r *Repositories) InvoiceTotals(ctx context.Context) (models.InvoiceTotals, error) {
	return r.Invoices.Totals(ctx)
}

// CustomerCount returns the number of customers
func (r *Repositories) CustomerCount(ctx context.Context) (int64, error) {
	return r.Customers.Count(ctx)
}

// Revenue returns monthly revenue in calendar order
func (r *Repositories) Revenue(ctx context.Context) ([]models.Revenue, error) {
	return r.Customers.Revenue(ctx)
}

// ListCustomers lists every customer
func (r *Repositories) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return r.Customers.List(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching search literally anywhere in the value
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
