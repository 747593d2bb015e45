package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	reporterEmailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	plateRe         = regexp.MustCompile(`^[A-Z0-9 -]{1,16}$`)
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("reporter_email", validateReporterEmail)
	validate.RegisterValidation("plate", validatePlate)
}

func validateReporterEmail(fl validator.FieldLevel) bool {
	return reporterEmailRe.MatchString(fl.Field().String())
}

// blank plates are allowed here, they are dropped before assignment
func validatePlate(fl validator.FieldLevel) bool {
	p := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	return p == "" || plateRe.MatchString(p)
}
