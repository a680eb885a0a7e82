package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice defines the invoice model based on the 'invoices' table
type Invoice struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	CustomerID uuid.UUID     `json:"customerId" db:"customer_id"`
	Amount     int           `json:"amount" db:"amount" example:"15795"` // cents
	Status     InvoiceStatus `json:"status" db:"status" example:"pending"`
	Date       time.Time     `json:"date" db:"date"`

	// Joined from customers when listing
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// InvoiceInput is a validated, typed invoice submission
type InvoiceInput struct {
	CustomerID  uuid.UUID
	AmountCents int
	Status      InvoiceStatus
}

// InvoiceTotals sums invoice amounts by status, in cents
type InvoiceTotals struct {
	Count   int64 `json:"count"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}
