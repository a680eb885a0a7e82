package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldErrors maps a form field name to its ordered list of messages
type FieldErrors map[string][]string

// Add appends a message to a field
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// HasErrors reports whether any field has a message
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Validator runs struct-tag validation and renders user-facing messages.
// Messages registered for a form take precedence over the English defaults.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	messages   map[string]string
}

// New creates a Validator with the custom rules and English translations registered
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	// Report form field names instead of Go struct field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = validate.RegisterValidation(NotBlankTag, notBlank)
	_ = validate.RegisterValidation(IntGteTag, intGte)
	_ = validate.RegisterValidation(NumGtTag, numGt)
	registerCustomTranslations(validate, translator)

	return &Validator{
		validate:   validate,
		translator: translator,
		messages:   make(map[string]string),
	}
}

// RegisterForm registers the messages of a form type and an optional struct-level rule.
// Message keys are either "field" or "field.tag"; the more specific key wins.
func (v *Validator) RegisterForm(form interface{}, messages map[string]string, structRules ...validator.StructLevelFunc) {
	typeName := reflect.Indirect(reflect.ValueOf(form)).Type().Name()
	for key, msg := range messages {
		v.messages[typeName+"."+key] = msg
	}
	for _, rule := range structRules {
		v.validate.RegisterStructValidation(rule, form)
	}
}

// Struct validates s and collects every failing field. A nil result means s is valid.
func (v *Validator) Struct(s interface{}) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	errs := FieldErrors{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs.Add("_", err.Error())
		return errs
	}

	for _, fe := range validationErrors {
		errs.Add(fe.Field(), v.message(fe))
	}
	return errs
}

func (v *Validator) message(fe validator.FieldError) string {
	ns := fe.Namespace()
	if msg, ok := v.messages[ns+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := v.messages[ns]; ok {
		return msg
	}
	return fe.Translate(v.translator)
}

func registerCustomTranslations(validate *validator.Validate, translator ut.Translator) {
	noop := func(ut.Translator) error { return nil }
	translate := func(_ ut.Translator, fe validator.FieldError) string {
		switch fe.Tag() {
		case NotBlankTag:
			return fe.Field() + " cannot be blank"
		case IntGteTag:
			return fe.Field() + " must be a whole number of at least " + fe.Param()
		case NumGtTag:
			return fe.Field() + " must be a number greater than " + fe.Param()
		default:
			return fe.Error()
		}
	}
	for _, tag := range []string{NotBlankTag, IntGteTag, NumGtTag} {
		_ = validate.RegisterTranslation(tag, translator, noop, translate)
	}
}
