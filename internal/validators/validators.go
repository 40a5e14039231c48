package validators

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	errs "task-management-system.com/task-management-system/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// checkStruct runs the struct tags of r and records each failure on result.
func checkStruct(r any, result *errs.ValidationError) {
	err := validate.Struct(r)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), describe(fe.Tag(), fe.Param()))
	}
}

func checkVar(field string, value any, tag string, result *errs.ValidationError) {
	if err := validate.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			result.Add(field, describe(fieldErrs[0].Tag(), fieldErrs[0].Param()))
			return
		}
		result.Add(field, err.Error())
	}
}

func describe(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + param
	case "min":
		return "must not be empty"
	default:
		return "failed " + tag + " validation"
	}
}

var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDeadline accepts ISO-8601 timestamps. Values without a zone are
// read as UTC. The result is always normalised to UTC.
func ParseDeadline(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func notBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}
