package validators

import (
	"errors"
	"strings"
	"time"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// FieldTypes lists the sport types a field can have.
var FieldTypes = []string{"soccer", "minisoccer", "futsal", "basketball", "volleyball"}

func IsValidFieldType(t string) bool {
	for _, ft := range FieldTypes {
		if t == ft {
			return true
		}
	}
	return false
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeFormat, s)
}

// FieldMessages flattens a binding error into per-field messages for 422
// responses. Anything that is not a validator error (malformed JSON, wrong
// types) collapses to a single body-level message.
func FieldMessages(err error) map[string]string {
	out := map[string]string{}

	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "malformed request body"
		return out
	}

	for _, fe := range verrs {
		name := toSnake(fe.Field())
		switch fe.Tag() {
		case "required":
			out[name] = "the field is required"
		case "email":
			out[name] = "must be a valid email address"
		case "min":
			out[name] = "must be at least " + fe.Param() + " characters"
		case "eqfield":
			out[name] = "must match " + toSnake(fe.Param())
		case "oneof":
			out[name] = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
		default:
			out[name] = "is invalid"
		}
	}
	return out
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
