package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// credits_per_user -> Credits Per User
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns the first binding failure into an AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required", TagNotBlank:
			return RequiredField(field)
		case "min", "gte", "gt":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, e.Param()), http.StatusBadRequest)
		case "max", "lte", "lt":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", field, e.Param()), http.StatusBadRequest)
		case "oneof":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be one of [%s]", field, e.Param()), http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
