package utils

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationFields converts a binding failure into a field-keyed map of
// human readable messages so clients can render errors inline. Returns
// nil when the error did not come from struct validation.
func ValidationFields(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "url":
		return "Please enter a valid URL"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
