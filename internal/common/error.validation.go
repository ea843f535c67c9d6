package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap turns validator errors into the field->message map
// returned with 400 responses. Field names are the JSON names when the
// validator has a tag name func registered.
func ValidationErrorMap(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := joinPath(fe.Namespace())
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = fieldMessage(fe.Field(), fe)
	}
	return out
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		if isLengthKind(fe) {
			return fmt.Sprintf("%s must contain at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max", "lte":
		if isLengthKind(fe) {
			return fmt.Sprintf("%s must contain at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, toSnake(fe.Param()))
	case "objectid":
		return fmt.Sprintf("%s must be a valid ObjectID", field)
	case "no_xss":
		return fmt.Sprintf("%s contains forbidden markup", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isLengthKind(fe validator.FieldError) bool {
	switch fe.Kind().String() {
	case "string", "slice", "map", "array":
		return true
	}
	return false
}

// toSnake converts a Go field name (StartDate) to its JSON name (start_date).
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
