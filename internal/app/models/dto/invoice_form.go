package dto

import (
	"math"

	"github.com/google/uuid"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// Invoice form messages
const (
	MsgInvoiceCustomer = "Please select a customer."
	MsgInvoiceAmount   = "Please enter an amount greater than $0."
	MsgInvoiceStatus   = "Please select an invoice status."
)

var invoiceMessages = map[string]string{
	"customerId": MsgInvoiceCustomer,
	"amount":     MsgInvoiceAmount,
	"status":     MsgInvoiceStatus,
}

// InvoiceForm is a raw invoice submission. Amount is in currency units, not cents.
type InvoiceForm struct {
	CustomerID FormValue `form:"customerId" json:"customerId" validate:"required,uuid" example:"3958dc9e-712f-4377-85e9-fec4b6a6442a"`
	Amount     FormValue `form:"amount" json:"amount" validate:"numgt=0" example:"157.95"`
	Status     FormValue `form:"status" json:"status" validate:"oneof=pending paid" example:"pending"`
}

// Decode validates the submission and converts it to a typed invoice input with the amount in cents
func (f InvoiceForm) Decode() (*models.InvoiceInput, validation.FieldErrors) {
	errs := formValidator.Struct(f)
	if errs == nil {
		errs = validation.FieldErrors{}
	}

	var cents int
	if _, failed := errs["amount"]; !failed {
		amount, _ := validation.ParseNumber(string(f.Amount))
		scaled := math.Round(amount * 100)
		if scaled < 1 || scaled > math.MaxInt32 {
			errs.Add("amount", MsgInvoiceAmount)
		}
		cents = int(scaled)
	}

	if errs.HasErrors() {
		return nil, errs
	}

	return &models.InvoiceInput{
		CustomerID:  uuid.MustParse(string(f.CustomerID)),
		AmountCents: cents,
		Status:      models.InvoiceStatus(f.Status),
	}, nil
}

// InvoiceFromModel renders a stored invoice back into form values
func InvoiceFromModel(inv *models.Invoice) InvoiceForm {
	return InvoiceForm{
		CustomerID: FormValue(inv.CustomerID.String()),
		Amount:     FormValue(centsToAmount(inv.Amount)),
		Status:     FormValue(inv.Status),
	}
}
