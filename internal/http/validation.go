package http

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
const jsonTagParts = 2

var registerTagNamesOnce sync.Once

// useJSONFieldNames makes gin's validator report fields by their JSON name,
// so binding errors line up with the keys clients send.
func useJSONFieldNames() {
	registerTagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// validationMessages maps validation tags to message templates.
// {param} is replaced by the tag parameter.
var validationMessages = map[string]string{
	"required": "this field is required",
	"email":    "must be a valid email address",
	"max":      "must be at most {param} characters",
	"gt":       "must be greater than {param}",
	"datetime": "must be a date in YYYY-MM-DD format",
}

// bindingDetails extracts field-level messages from a gin binding error.
// Returns nil when err is not a validation failure.
func bindingDetails(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	msg, ok := validationMessages[fe.Tag()]
	if !ok {
		return "failed " + fe.Tag() + " validation"
	}
	return strings.ReplaceAll(msg, "{param}", fe.Param())
}
