package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxUIDLength bounds the player uid path parameter
const MaxUIDLength = 20

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator. Safe to call more than once.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		// Register custom validation for player uids
		_ = v.RegisterValidation("playeruid", validatePlayerUID)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "playeruid":
			errs[field] = "Must contain only digits"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// playerLevelRequest holds the path parameters of the per-player endpoint
type playerLevelRequest struct {
	UID string `validate:"required,max=20,playeruid"`
}

// validatePlayerUID accepts uids made only of ASCII digits
func validatePlayerUID(fl validator.FieldLevel) bool {
	uid := fl.Field().String()
	if uid == "" {
		return true
	}
	for _, r := range uid {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
