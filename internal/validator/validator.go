package validator

import (
	"github.com/go-playground/validator/v10"

	ierr "github.com/orderdocs/orderdocs/internal/errors"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation on a request body and converts
// field failures into a validation error with per-field details.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
