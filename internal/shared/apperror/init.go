package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagNotBlank rejects strings that are empty after trimming spaces.
const TagNotBlank = "notblank"

// Init configures gin's validator. Call it once before routes are served.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Configure(v)
	}
}

// Configure makes v report json (or form) field names and registers the
// custom tags used by request DTOs.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(f.String()) != ""
	})
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}
