package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Title  string `form:"title" validate:"notblank"`
	Count  string `form:"count" validate:"intgte=1"`
	Price  string `form:"price" validate:"numgt=0"`
	Email  string `json:"email" validate:"omitempty,email"`
	Secret string `form:"-"`
}

func TestValidator_CollectsAllFieldsWithRegisteredMessages(t *testing.T) {
	v := New()
	v.RegisterForm(sampleForm{}, map[string]string{
		"title":        "Please enter a title",
		"count":        "Please enter a count",
		"count.intgte": "Count must be positive",
	})

	errs := v.Struct(sampleForm{Title: "  ", Count: "0", Price: "free", Email: "nope"})
	require.NotNil(t, errs)

	assert.Equal(t, []string{"Please enter a title"}, errs["title"])
	assert.Equal(t, []string{"Count must be positive"}, errs["count"])
	assert.Equal(t, []string{"price must be a number greater than 0"}, errs["price"])
	assert.Equal(t, []string{"email must be a valid email address"}, errs["email"])
}

func TestValidator_Valid(t *testing.T) {
	v := New()
	v.RegisterForm(sampleForm{}, nil)

	errs := v.Struct(sampleForm{Title: "x", Count: "3", Price: "0.5"})
	assert.Nil(t, errs)
	assert.False(t, errs.HasErrors())
}

func TestValidator_StructRule(t *testing.T) {
	type pair struct {
		Low  string `form:"low" validate:"intgte=0"`
		High string `form:"high" validate:"intgte=0"`
	}

	v := New()
	v.RegisterForm(pair{}, map[string]string{"high.order": "High must not be below low"},
		func(sl validator.StructLevel) {
			p := sl.Current().Interface().(pair)
			low, okLow := ParseWholeNumber(p.Low)
			high, okHigh := ParseWholeNumber(p.High)
			if okLow && okHigh && high < low {
				sl.ReportError(p.High, "high", "High", "order", "")
			}
		})

	errs := v.Struct(pair{Low: "5", High: "2"})
	assert.Equal(t, FieldErrors{"high": {"High must not be below low"}}, errs)
}

func TestParseWholeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"40.0", 40, true},
		{"1.5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"-3", -3, true},
		{"2147483647", 2147483647, true},
		{"2147483648", 0, false},
		{"-2147483649", 0, false},
		{"3000000000.0", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWholeNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
