package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	RegisterCustomValidations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FieldError is the first failing field of a validation run.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// FirstError reduces a validator error to its first failing field. Fields are
// reported in struct declaration order.
func FirstError(err error) (FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return FieldError{}, false
	}
	fe := verrs[0]
	return FieldError{
		Field:   fe.Field(),
		Tag:     fe.Tag(),
		Message: describe(fe),
	}, true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "reporter_email":
		return fmt.Sprintf("%s is not a valid email address", fe.Field())
	case "plate":
		return fmt.Sprintf("%s is not a valid vehicle plate", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
