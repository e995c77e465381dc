package utils

import (
	"regexp"
	"time"

	"carepulse-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("consented", validateConsented)
	validate.RegisterValidation("intake_date", validateIntakeDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar validates a single value against a tag expression. The form
// engine uses it to validate one field at a time.
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexInternationalPhoneNumber)
	return re.MatchString(phoneNumber)
}

// Required consents are stored as bools; only true passes.
func validateConsented(fl validator.FieldLevel) bool {
	return fl.Field().Kind().String() == "bool" && fl.Field().Bool()
}

func validateIntakeDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := time.Parse(constvars.DateLayoutISO, value)
	return err == nil
}
