package models

// CourseStatus is the lifecycle state of a course
type CourseStatus string

const (
	CourseStatusDisabled CourseStatus = "disabled"
	CourseStatusActive   CourseStatus = "active"
)

// InvoiceStatus is the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout is the wire and storage layout of calendar dates
const DateLayout = "2006-01-02"
