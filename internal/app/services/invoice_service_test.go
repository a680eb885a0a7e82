package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

func TestInvoiceCreate(t *testing.T) {
	repo := newFakeInvoices()
	views, store := newViews()
	svc := NewInvoiceService(repo, views)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 23, 30, 0, 0, time.FixedZone("PDT", -7*3600)) }
	ctx := context.Background()
	customer := uuid.New()
	for _, key := range []string{AdminInvoicesPath, AdminPath, AdminCoursesPath} {
		require.NoError(t, store.Set(ctx, key, []byte(`{}`)))
	}

	result := svc.Create(ctx, dto.InvoiceForm{CustomerID: dto.FormValue(customer.String()), Amount: "157.95", Status: "pending"})

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, AdminInvoicesPath, result.Redirect)
	require.NotNil(t, repo.created)
	assert.Equal(t, 15795, repo.created.AmountCents)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), repo.date)
	assert.False(t, cached(t, store, AdminInvoicesPath))
	assert.False(t, cached(t, store, AdminPath))
	assert.True(t, cached(t, store, AdminCoursesPath))
}

func TestInvoiceCreate_Invalid(t *testing.T) {
	views, _ := newViews()
	svc := NewInvoiceService(newFakeInvoices(), views)

	result := svc.Create(context.Background(), dto.InvoiceForm{Amount: "0", Status: "overdue"})

	assert.Equal(t, OutcomeInvalid, result.Outcome)
	assert.Equal(t, MsgCreateInvoiceInvalid, result.State.Message)
	assert.Equal(t, []string{dto.MsgInvoiceCustomer}, result.State.Errors["customerId"])
	assert.Equal(t, []string{dto.MsgInvoiceAmount}, result.State.Errors["amount"])
	assert.Equal(t, []string{dto.MsgInvoiceStatus}, result.State.Errors["status"])
}

func TestInvoiceUpdateAndDelete(t *testing.T) {
	repo := newFakeInvoices()
	views, _ := newViews()
	svc := NewInvoiceService(repo, views)
	ctx := context.Background()
	id := uuid.New()
	repo.rows[id] = models.Invoice{ID: id, Amount: 100, Status: models.InvoiceStatusPending}
	form := dto.InvoiceForm{CustomerID: dto.FormValue(uuid.NewString()), Amount: "20", Status: "paid"}

	assert.Equal(t, OutcomeSuccess, svc.Update(ctx, id, form).Outcome)
	assert.Equal(t, 2000, repo.rows[id].Amount)
	assert.Equal(t, models.InvoiceStatusPaid, repo.rows[id].Status)

	repo.failOn = "update"
	failed := svc.Update(ctx, id, form)
	assert.Equal(t, OutcomeFailed, failed.Outcome)
	assert.Equal(t, MsgUpdateInvoiceFailed, failed.State.Message)

	repo.failOn = ""
	assert.Equal(t, DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteInvoice}, svc.Delete(ctx, id))
	assert.Equal(t, DeleteResult{Outcome: OutcomeSuccess, Message: MsgDeleteInvoice}, svc.Delete(ctx, id))

	repo.failOn = "delete"
	assert.Equal(t, DeleteResult{Outcome: OutcomeFailed, Message: MsgDeleteInvoiceFailed}, svc.Delete(ctx, id))
}

func TestInvoiceCreate_DatabaseError(t *testing.T) {
	repo := newFakeInvoices()
	repo.failOn = "create"
	views, _ := newViews()
	svc := NewInvoiceService(repo, views)

	result := svc.Create(context.Background(), dto.InvoiceForm{CustomerID: dto.FormValue(uuid.NewString()), Amount: "1", Status: "paid"})
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, MsgCreateInvoiceFailed, result.State.Message)
}

func TestInvoiceForm_UnknownCustomer(t *testing.T) {
	repo := newFakeInvoices()
	known := uuid.New()
	repo.customers = map[uuid.UUID]bool{known: true}
	views, store := newViews()
	svc := NewInvoiceService(repo, views)
	ctx := context.Background()
	id := uuid.New()
	repo.rows[id] = models.Invoice{ID: id, CustomerID: known, Amount: 100, Status: models.InvoiceStatusPending}
	require.NoError(t, store.Set(ctx, AdminInvoicesPath, []byte(`{}`)))
	form := dto.InvoiceForm{CustomerID: dto.FormValue(uuid.NewString()), Amount: "10", Status: "paid"}

	created := svc.Create(ctx, form)
	assert.Equal(t, OutcomeInvalid, created.Outcome)
	assert.Equal(t, MsgCreateInvoiceInvalid, created.State.Message)
	assert.Equal(t, []string{dto.MsgInvoiceCustomer}, created.State.Errors["customerId"])
	assert.Nil(t, repo.created)

	updated := svc.Update(ctx, id, form)
	assert.Equal(t, OutcomeInvalid, updated.Outcome)
	assert.Equal(t, MsgUpdateInvoiceInvalid, updated.State.Message)
	assert.Equal(t, []string{dto.MsgInvoiceCustomer}, updated.State.Errors["customerId"])
	assert.Equal(t, known, repo.rows[id].CustomerID)

	assert.True(t, cached(t, store, AdminInvoicesPath))
}
