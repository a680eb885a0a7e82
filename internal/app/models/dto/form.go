package dto

import (
	"bytes"
	"encoding/json"

	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// FormValue is a raw submitted field. JSON numbers, booleans and strings all decode to their
// literal text so that JSON and urlencoded submissions go through the same rules.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(data)
	return nil
}

// FormState is returned to the caller when a form action does not succeed.
// Data echoes the raw submission so the form can be redisplayed populated.
type FormState[T any] struct {
	Data    *T                     `json:"data,omitempty"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Form states as returned by the course and invoice actions
type (
	CourseFormState  = FormState[CourseForm]
	InvoiceFormState = FormState[InvoiceForm]
)

var formValidator = newFormValidator()

func newFormValidator() *validation.Validator {
	v := validation.New()
	v.RegisterForm(CourseForm{}, courseMessages, courseDateOrder)
	v.RegisterForm(InvoiceForm{}, invoiceMessages)
	return v
}
