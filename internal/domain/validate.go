package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation problem, returned verbatim
// to the caller on 422 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of problems found in one payload. It is
// only ever returned complete, never partially.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return "invalid client payload: " + strings.Join(fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks the payload and accumulates every problem before
// returning. A nil return means the input may be persisted as-is.
func (in ClientInput) Validate() error {
	var errs ValidationErrors

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, FieldError{
				Field:   fe.Field(),
				Message: fe.Field() + " is required",
			})
		}
	}

	// Incomplete contacts collapse into one aggregate error regardless of
	// how many elements are bad.
	for _, c := range in.Contacts {
		if c.Type == "" || c.Value == "" {
			errs = append(errs, FieldError{
				Field:   "contacts",
				Message: "one or more contacts incomplete",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
