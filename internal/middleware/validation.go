package middleware

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on obj and returns a single
// human-readable message, or "" when the value is valid.
func ValidateRequest(obj any) string {
	err := validate.Struct(obj)
	if err == nil {
		return ""
	}

	var messages []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		messages = append(messages, fieldErr.Field()+": "+errorMsg(fieldErr))
	}
	return strings.Join(messages, "; ")
}

func errorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "gt":
		return "value must be greater than " + err.Param()
	case "gte":
		return "value must be greater than or equal to " + err.Param()
	default:
		return "invalid value"
	}
}
