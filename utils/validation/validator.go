package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator so handlers report field
// errors under the JSON names clients actually sent.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			errs = vErrs
		} else {
			return err
		}
		return newValidationError(errs)
	}
	return nil
}

// ValidationError carries one user-facing message per failing field.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			fieldErrors[field] = fmt.Sprintf("%s is required", field)
		case "min":
			fieldErrors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			fieldErrors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "gt":
			fieldErrors[field] = fmt.Sprintf("%s must be greater than %s", field, err.Param())
		case "datetime":
			fieldErrors[field] = fmt.Sprintf("%s must be a date in YYYY-MM-DD form", field)
		default:
			fieldErrors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: fieldErrors}
}
