package global

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator builds the shared validator. Error field names are the
// JSON names so 400 bodies use the same keys as request bodies.
func InitValidator() {
	Validate = NewValidator()
}

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("no_xss", validateNoXSS)
	return v
}

var xssPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"onclick=",
	"eval(",
	"document.cookie",
	"<iframe",
	"<object",
	"<embed",
}

// validateNoXSS rejects free text carrying script markup.
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	for _, pattern := range xssPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
