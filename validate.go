package signalboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all endpoint methods. validator.Validate is safe for
// concurrent use and caches struct metadata between calls.
var validate = validator.New()

// validateParams checks a params struct against its validation tags and
// converts failures into a [ValidationError] naming each offending field.
// It runs before any network I/O.
func validateParams(i any) error {
	if err := validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return newValidationError(verrs)
		}
		// Non-struct inputs and other misuse of the validator
		return err
	}
	return nil
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fieldErrors := make([]FieldError, 0, len(errs))

	for _, fe := range errs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}

	return &ValidationError{Errors: fieldErrors}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "latitude":
		return fmt.Sprintf("%s must be between -90 and 90", fe.Field())
	case "longitude":
		return fmt.Sprintf("%s must be between -180 and 180", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed validation", fe.Field())
	}
}

// missingField builds the ValidationError used for absent required arguments
// that are not part of a tagged params struct (identifiers, nil params).
func missingField(field string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}}}
}

// requireID guards path identifier arguments.
func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return missingField(field)
	}
	return nil
}
