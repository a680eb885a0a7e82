package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/pkg/validation"
)

func validCourseForm() CourseForm {
	return CourseForm{
		Name:   "Forklift Safety",
		Number: "1042",
		Start:  "2024-09-02",
		End:    "2024-12-20",
		Max:    "40",
		Status: "active",
	}
}

func TestCourseForm_DecodeValid(t *testing.T) {
	input, errs := validCourseForm().Decode()
	require.Nil(t, errs)

	assert.Equal(t, "Forklift Safety", input.Name)
	assert.Equal(t, 1042, input.CourseNumber)
	assert.Equal(t, 40, input.MaxHours)
	assert.Equal(t, models.CourseStatusActive, input.Status)
	assert.Equal(t, time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), input.StartDate)
	assert.Equal(t, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), input.EndDate)
}

func TestCourseForm_SameStartAndEndIsValid(t *testing.T) {
	form := validCourseForm()
	form.End = form.Start

	_, errs := form.Decode()
	assert.Nil(t, errs)
}

func TestCourseForm_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CourseForm)
		want   validation.FieldErrors
	}{
		{
			name:   "empty name",
			mutate: func(f *CourseForm) { f.Name = "" },
			want:   validation.FieldErrors{"name": {MsgCourseName}},
		},
		{
			name:   "blank name",
			mutate: func(f *CourseForm) { f.Name = "   " },
			want:   validation.FieldErrors{"name": {MsgCourseName}},
		},
		{
			name:   "zero number",
			mutate: func(f *CourseForm) { f.Number = "0" },
			want:   validation.FieldErrors{"number": {MsgCourseNumber}},
		},
		{
			name:   "non numeric number",
			mutate: func(f *CourseForm) { f.Number = "abc" },
			want:   validation.FieldErrors{"number": {MsgCourseNumber}},
		},
		{
			name:   "number beyond int column",
			mutate: func(f *CourseForm) { f.Number = "2147483648" },
			want:   validation.FieldErrors{"number": {MsgCourseNumber}},
		},
		{
			name:   "missing start",
			mutate: func(f *CourseForm) { f.Start = "" },
			want:   validation.FieldErrors{"start": {MsgCourseStart}},
		},
		{
			name:   "malformed end",
			mutate: func(f *CourseForm) { f.End = "20/12/2024" },
			want:   validation.FieldErrors{"end": {MsgCourseEnd}},
		},
		{
			name:   "end before start",
			mutate: func(f *CourseForm) { f.End = "2024-08-01" },
			want:   validation.FieldErrors{"end": {MsgCourseDateOrder}},
		},
		{
			name:   "zero max hours",
			mutate: func(f *CourseForm) { f.Max = "0" },
			want:   validation.FieldErrors{"max": {MsgCourseMaxHours}},
		},
		{
			name:   "fractional max hours",
			mutate: func(f *CourseForm) { f.Max = "2.5" },
			want:   validation.FieldErrors{"max": {MsgCourseMaxHours}},
		},
		{
			name:   "max hours beyond int column",
			mutate: func(f *CourseForm) { f.Max = "3000000000" },
			want:   validation.FieldErrors{"max": {MsgCourseMaxHours}},
		},
		{
			name:   "unknown status",
			mutate: func(f *CourseForm) { f.Status = "archived" },
			want:   validation.FieldErrors{"status": {MsgCourseStatus}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validCourseForm()
			tt.mutate(&form)

			input, errs := form.Decode()
			assert.Nil(t, input)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestCourseForm_CollectsEveryError(t *testing.T) {
	form := CourseForm{End: "2024-01-01", Start: "2024-02-01"}

	_, errs := form.Decode()

	assert.Equal(t, validation.FieldErrors{
		"name":   {MsgCourseName},
		"number": {MsgCourseNumber},
		"end":    {MsgCourseDateOrder},
		"max":    {MsgCourseMaxHours},
		"status": {MsgCourseStatus},
	}, errs)
}

func TestCourseForm_JSONAcceptsNumbers(t *testing.T) {
	var form CourseForm
	body := `{"name":"Welding","number":77,"start":"2024-01-01","end":"2024-01-31","max":12,"status":"disabled"}`
	require.NoError(t, json.Unmarshal([]byte(body), &form))

	assert.Equal(t, FormValue("77"), form.Number)

	input, errs := form.Decode()
	require.Nil(t, errs)
	assert.Equal(t, 77, input.CourseNumber)
	assert.Equal(t, 12, input.MaxHours)
	assert.Equal(t, models.CourseStatusDisabled, input.Status)
}

func TestCourseFromModel(t *testing.T) {
	course := &models.Course{
		Name:         "Welding",
		CourseNumber: 77,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		MaxHours:     12,
		Status:       models.CourseStatusActive,
	}

	form := CourseFromModel(course)
	assert.Equal(t, CourseForm{
		Name: "Welding", Number: "77", Start: "2024-01-01", End: "2024-01-31", Max: "12", Status: "active",
	}, form)
}
