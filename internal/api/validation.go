package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors translates binding failures into per-field messages. Returns
// nil when the error carries no field-level detail, such as malformed JSON.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// ValidationFailed builds the standard 400 payload for a binding error,
// attaching field detail when the error provides it.
func ValidationFailed(err error) ValidationErrorResponse {
	return ValidationErrorResponse{Error: "validation failed", Fields: FieldErrors(err)}
}
