package errdefs

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/study/pkg/dateutil"
)

var validate *validator.Validate

const (
	notBlankTag = "notblank"
	isoDateTag  = "isodate"
)

func init() {
	validate = validator.New()

	// Report JSON field names rather than Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation(isoDateTag, func(fl validator.FieldLevel) bool {
		return dateutil.Valid(fl.Field().String())
	})
}

// Struct validates a record against its `validate` tags. The first failing
// field is reported as a ValidationError.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return Validation("", err.Error())
	}
	fe := fieldErrs[0]
	return Validation(fe.Field(), reason(fe.Tag()))
}

func reason(tag string) string {
	switch tag {
	case notBlankTag, "required":
		return "required"
	case isoDateTag:
		return "must be a valid YYYY-MM-DD date"
	case "dive":
		return "invalid entry"
	}
	return "failed " + tag + " check"
}
