package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/viewcache"
)

var errDB = errors.New("connection refused")

func newViews() (*viewcache.Cache, *viewcache.MemoryStore) {
	store := viewcache.NewMemoryStore(32, time.Minute)
	return viewcache.New(store, zerolog.Nop()), store
}

func cached(t *testing.T, store *viewcache.MemoryStore, key string) bool {
	t.Helper()
	_, ok, _ := store.Get(context.Background(), key)
	return ok
}

type fakeCourses struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]models.Course
	failOn  string
	raceErr error
	inserts int
	lists   int
}

func newFakeCourses(existing ...models.Course) *fakeCourses {
	f := &fakeCourses{rows: map[uuid.UUID]models.Course{}}
	for _, c := range existing {
		f.rows[c.ID] = c
	}
	return f
}

func (f *fakeCourses) fail(op string) error {
	if f.failOn == op {
		return errDB
	}
	return nil
}

func (f *fakeCourses) Create(_ context.Context, in *models.CourseInput) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("create"); err != nil {
		return uuid.Nil, err
	}
	if f.raceErr != nil {
		return uuid.Nil, f.raceErr
	}
	id := uuid.New()
	f.rows[id] = models.Course{ID: id, Name: in.Name, CourseNumber: in.CourseNumber, StartDate: in.StartDate,
		EndDate: in.EndDate, MaxHours: in.MaxHours, Status: in.Status}
	f.inserts++
	return id, nil
}

func (f *fakeCourses) ExistsByName(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("exists"); err != nil {
		return false, err
	}
	for _, c := range f.rows {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourses) ExistsByNumber(_ context.Context, number int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.CourseNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourses) Update(_ context.Context, id uuid.UUID, in *models.CourseInput) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("update"); err != nil {
		return 0, err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	f.rows[id] = models.Course{ID: id, Name: in.Name, CourseNumber: in.CourseNumber, StartDate: in.StartDate,
		EndDate: in.EndDate, MaxHours: in.MaxHours, Status: in.Status}
	return 1, nil
}

func (f *fakeCourses) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("delete"); err != nil {
		return 0, err
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (f *fakeCourses) List(_ context.Context, filter repositories.CourseFilter) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("list"); err != nil {
		return nil, err
	}
	f.lists++
	out := []models.Course{}
	for _, c := range f.rows {
		if filter.Status == "" || c.Status == filter.Status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourses) Count(ctx context.Context, filter repositories.CourseFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *fakeCourses) Counts(context.Context) (models.CourseCounts, error) {
	return models.CourseCounts{}, nil
}

type fakeInvoices struct {
	rows      map[uuid.UUID]models.Invoice
	customers map[uuid.UUID]bool
	failOn    string
	created   *models.InvoiceInput
	date      time.Time
}

func newFakeInvoices() *fakeInvoices {
	return &fakeInvoices{rows: map[uuid.UUID]models.Invoice{}}
}

// knownCustomer accepts every id unless customers is set
func (f *fakeInvoices) knownCustomer(id uuid.UUID) bool {
	return f.customers == nil || f.customers[id]
}

func (f *fakeInvoices) Create(_ context.Context, in *models.InvoiceInput, date time.Time) (uuid.UUID, error) {
	if f.failOn == "create" {
		return uuid.Nil, errDB
	}
	if !f.knownCustomer(in.CustomerID) {
		return uuid.Nil, apperrors.ErrCustomerNotFound
	}
	id := uuid.New()
	f.created, f.date = in, date
	f.rows[id] = models.Invoice{ID: id, CustomerID: in.CustomerID, Amount: in.AmountCents, Status: in.Status, Date: date}
	return id, nil
}

func (f *fakeInvoices) Update(_ context.Context, id uuid.UUID, in *models.InvoiceInput) (int64, error) {
	if f.failOn == "update" {
		return 0, errDB
	}
	if !f.knownCustomer(in.CustomerID) {
		return 0, apperrors.ErrCustomerNotFound
	}
	inv, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	inv.CustomerID, inv.Amount, inv.Status = in.CustomerID, in.AmountCents, in.Status
	f.rows[id] = inv
	return 1, nil
}

func (f *fakeInvoices) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if f.failOn == "delete" {
		return 0, errDB
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeInvoices) GetByID(_ context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrInvoiceNotFound
	}
	return &inv, nil
}

func (f *fakeInvoices) List(context.Context, repositories.InvoiceFilter) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for _, inv := range f.rows {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoices) Count(context.Context, repositories.InvoiceFilter) (int64, error) {
	return int64(len(f.rows)), nil
}
