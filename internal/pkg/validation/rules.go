package validation

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom validation tags
const (
	// NotBlankTag rejects strings that are empty after trimming whitespace
	NotBlankTag = "notblank"
	// IntGteTag accepts a string holding a whole number greater than or equal to the param
	IntGteTag = "intgte"
	// NumGtTag accepts a string holding a finite number strictly greater than the param
	NumGtTag = "numgt"
)

// ParseWholeNumber parses s as a base-10 integer that fits a PostgreSQL INT column.
// Surrounding whitespace is ignored and decimal forms with no fractional part ("40.0")
// are accepted.
func ParseWholeNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(n), true
	}
	f, ok := ParseNumber(s)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ParseNumber parses s as a finite float
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// stringField returns the value of string-kinded fields, including named string types
func stringField(fl validator.FieldLevel) (string, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}

func notBlank(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && strings.TrimSpace(s) != ""
}

func intGte(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	if !ok {
		return false
	}
	lower, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	n, ok := ParseWholeNumber(s)
	return ok && n >= lower
}

func numGt(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	if !ok {
		return false
	}
	bound, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	f, ok := ParseNumber(s)
	return ok && f > bound
}
