package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired = "is required"
	ErrEmail    = "must be a valid email address"
	ErrMinValue = "must be at least %s"
	ErrMaxValue = "must be at most %s"
	ErrGtValue  = "must be greater than %s"
	ErrLenValue = "must be exactly %s characters long"
	ErrDate     = "must be a date in YYYY-MM-DD format"
	ErrPassword = "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)"
	ErrInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("password", validatePassword)

	return validate
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGtValue, err.Param())
	case "len":
		return fmt.Sprintf(ErrLenValue, err.Param())
	case "datetime":
		return ErrDate
	case "password":
		return ErrPassword
	default:
		return ErrInvalid
	}
}
