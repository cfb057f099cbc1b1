package service

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all record services. Field names in validation
// errors come from the `form` tag, which mirrors the multipart field names
// clients actually send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// missingFields runs struct validation and flattens the result into the
// offending field names, in declaration order.
func missingFields(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// dateLayouts are the accepted formats for caller-supplied date strings.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a caller-supplied date string. Malformed input is
// rejected rather than silently stored as a zero value.
func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{
		Fields:  []string{field},
		Message: field + " must be a valid date (RFC 3339 or YYYY-MM-DD)",
	}
}
