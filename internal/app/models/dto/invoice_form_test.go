package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

const customerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

func TestInvoiceForm_DecodeValid(t *testing.T) {
	form := InvoiceForm{CustomerID: customerID, Amount: "157.95", Status: "pending"}

	input, errs := form.Decode()
	require.Nil(t, errs)

	assert.Equal(t, uuid.MustParse(customerID), input.CustomerID)
	assert.Equal(t, 15795, input.AmountCents)
	assert.Equal(t, models.InvoiceStatusPending, input.Status)
}

func TestInvoiceForm_FieldErrors(t *testing.T) {
	tests := []struct {
		name string
		form InvoiceForm
		want validation.FieldErrors
	}{
		{
			name: "everything missing",
			form: InvoiceForm{},
			want: validation.FieldErrors{
				"customerId": {MsgInvoiceCustomer},
				"amount":     {MsgInvoiceAmount},
				"status":     {MsgInvoiceStatus},
			},
		},
		{
			name: "bad customer id",
			form: InvoiceForm{CustomerID: "42", Amount: "10", Status: "paid"},
			want: validation.FieldErrors{"customerId": {MsgInvoiceCustomer}},
		},
		{
			name: "zero amount",
			form: InvoiceForm{CustomerID: customerID, Amount: "0", Status: "paid"},
			want: validation.FieldErrors{"amount": {MsgInvoiceAmount}},
		},
		{
			name: "negative amount",
			form: InvoiceForm{CustomerID: customerID, Amount: "-5", Status: "paid"},
			want: validation.FieldErrors{"amount": {MsgInvoiceAmount}},
		},
		{
			name: "amount rounds to zero cents",
			form: InvoiceForm{CustomerID: customerID, Amount: "0.001", Status: "paid"},
			want: validation.FieldErrors{"amount": {MsgInvoiceAmount}},
		},
		{
			name: "unknown status",
			form: InvoiceForm{CustomerID: customerID, Amount: "1", Status: "overdue"},
			want: validation.FieldErrors{"status": {MsgInvoiceStatus}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, errs := tt.form.Decode()
			assert.Nil(t, input)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestInvoiceFromModel(t *testing.T) {
	inv := &models.Invoice{CustomerID: uuid.MustParse(customerID), Amount: 20348, Status: models.InvoiceStatusPaid}

	form := InvoiceFromModel(inv)
	assert.Equal(t, InvoiceForm{CustomerID: customerID, Amount: "203.48", Status: "paid"}, form)
}
