package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries per-field constraint violations so the error
// middleware can surface them as a client error with field detail.
type ValidationError struct {
	Fields []ErrorDetail
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) ToErrorDetails() []ErrorDetail {
	return e.Fields
}

func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make([]ErrorDetail, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
		})
	}

	return &ValidationError{Fields: details}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}
