package services

import (
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/metrics"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// Listing routes revalidated by mutations
const (
	AdminPath         = "/admin"
	AdminCoursesPath  = "/admin/courses"
	AdminInvoicesPath = "/admin/invoices"
	AdminCustomerPath = "/admin/customers"
	DashboardPath     = "/dashboard"
)

// Form action messages
const (
	MsgCreateCourseInvalid   = "Missing Fields. Failed to Create Course."
	MsgCreateCourseDuplicate = "Cannot create course due to duplicate fields."
	MsgCreateCourseFailed    = "Database Error: Failed to Create Course."
	MsgUpdateCourseInvalid   = "Missing Fields. Failed to Update Course."
	MsgUpdateCourseFailed    = "Database Error: Failed to Update Course."
	MsgDeleteCourse          = "Deleted Course."
	MsgDeleteCourseFailed    = "Database Error: Failed to Delete Course."

	MsgCreateInvoiceInvalid = "Missing Fields. Failed to Create Invoice."
	MsgCreateInvoiceFailed  = "Database Error: Failed to Create Invoice."
	MsgUpdateInvoiceInvalid = "Missing Fields. Failed to Update Invoice."
	MsgUpdateInvoiceFailed  = "Database Error: Failed to Update Invoice."
	MsgDeleteInvoice        = "Deleted Invoice."
	MsgDeleteInvoiceFailed  = "Database Error: Failed to Delete Invoice."
)

// Outcome classifies the result of a form action
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeInvalid
	OutcomeDuplicate
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return metrics.OutcomeSuccess
	case OutcomeInvalid:
		return metrics.OutcomeInvalid
	case OutcomeDuplicate:
		return metrics.OutcomeDuplicate
	default:
		return metrics.OutcomeDBError
	}
}

// FormResult is the result of a create or update. On success Redirect names the listing to
// go to; otherwise State carries the raw submission, field errors and a summary message.
type FormResult[T any] struct {
	Outcome  Outcome
	Redirect string
	State    dto.FormState[T]
}

// DeleteResult is the result of a delete action
type DeleteResult struct {
	Outcome Outcome
	Message string
}

func succeeded[T any](redirect string) FormResult[T] {
	return FormResult[T]{Outcome: OutcomeSuccess, Redirect: redirect}
}

func rejected[T any](outcome Outcome, form T, errs validation.FieldErrors, message string) FormResult[T] {
	return FormResult[T]{
		Outcome: outcome,
		State:   dto.FormState[T]{Data: &form, Errors: errs, Message: message},
	}
}
