package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for device types
	_ = v.RegisterValidation("devicetype", validateDeviceType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateDeviceType accepts the known device types or an empty value
func validateDeviceType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "MOBILE", "TABLET", "DESKTOP":
		return true
	default:
		return false
	}
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			field := strings.ToLower(fieldErr.Field())
			switch fieldErr.Tag() {
			case "required":
				errs[field] = fmt.Sprintf("%s is required", field)
			case "devicetype":
				errs[field] = fmt.Sprintf("%s must be one of MOBILE, TABLET, DESKTOP", field)
			case "min":
				errs[field] = fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
			case "max":
				errs[field] = fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
			case "uuid":
				errs[field] = fmt.Sprintf("%s must be a valid UUID", field)
			default:
				errs[field] = fmt.Sprintf("%s is invalid", field)
			}
		}
		return errs
	}

	errs["request"] = ErrMsgInvalidRequestSummary
	return errs
}
