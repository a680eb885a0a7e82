package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

// Course form messages
const (
	MsgCourseName      = "Please enter a course name"
	MsgCourseNumber    = "Please enter a course number from FileMaker"
	MsgCourseStart     = "Please choose a start date"
	MsgCourseEnd       = "Please choose a end date"
	MsgCourseDateOrder = "End date cannot be earlier than the start date."
	MsgCourseMaxHours  = "Please enter a maximum hours that greater than 0"
	MsgCourseStatus    = "Please select a course status."

	MsgCourseNameTaken   = "A course with that name already exists."
	MsgCourseNumberTaken = "A course with that number already exists."
)

const dateOrderTag = "dateorder"

var courseMessages = map[string]string{
	"name":          MsgCourseName,
	"number":        MsgCourseNumber,
	"start":         MsgCourseStart,
	"end":           MsgCourseEnd,
	"end.dateorder": MsgCourseDateOrder,
	"max":           MsgCourseMaxHours,
	"status":        MsgCourseStatus,
}

// CourseForm is a raw course submission
type CourseForm struct {
	Name   FormValue `form:"name" json:"name" validate:"notblank" example:"Forklift Safety"`
	Number FormValue `form:"number" json:"number" validate:"intgte=1" example:"1042"`
	Start  FormValue `form:"start" json:"start" validate:"required,datetime=2006-01-02" example:"2024-09-02"`
	End    FormValue `form:"end" json:"end" validate:"required,datetime=2006-01-02" example:"2024-12-20"`
	Max    FormValue `form:"max" json:"max" validate:"intgte=1" example:"40"`
	Status FormValue `form:"status" json:"status" validate:"oneof=disabled active" example:"active"`
}

// courseDateOrder attaches an error to end when both dates parse and end is before start
func courseDateOrder(sl validator.StructLevel) {
	form := sl.Current().Interface().(CourseForm)
	start, errStart := time.Parse(models.DateLayout, string(form.Start))
	end, errEnd := time.Parse(models.DateLayout, string(form.End))
	if errStart == nil && errEnd == nil && end.Before(start) {
		sl.ReportError(form.End, "end", "End", dateOrderTag, "")
	}
}

// Decode validates the submission and converts it to a typed course input.
// Every failing field is reported; a nil error map means the input is usable.
func (f CourseForm) Decode() (*models.CourseInput, validation.FieldErrors) {
	if errs := formValidator.Struct(f); errs.HasErrors() {
		return nil, errs
	}

	number, _ := validation.ParseWholeNumber(string(f.Number))
	maxHours, _ := validation.ParseWholeNumber(string(f.Max))
	start, _ := time.Parse(models.DateLayout, string(f.Start))
	end, _ := time.Parse(models.DateLayout, string(f.End))

	return &models.CourseInput{
		Name:         strings.TrimSpace(string(f.Name)),
		CourseNumber: number,
		StartDate:    start,
		EndDate:      end,
		MaxHours:     maxHours,
		Status:       models.CourseStatus(f.Status),
	}, nil
}

// CourseFromModel renders a stored course back into form values
func CourseFromModel(c *models.Course) CourseForm {
	return CourseForm{
		Name:   FormValue(c.Name),
		Number: FormValue(itoa(c.CourseNumber)),
		Start:  FormValue(c.StartDate.Format(models.DateLayout)),
		End:    FormValue(c.EndDate.Format(models.DateLayout)),
		Max:    FormValue(itoa(c.MaxHours)),
		Status: FormValue(c.Status),
	}
}
