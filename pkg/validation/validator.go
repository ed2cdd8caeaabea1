package validation

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
)

// ToDetails converts binding errors into a map[field]message suitable for the
// error.details of an API response. Field-rule violations are reported by the
// registration validator; this covers the ways a payload can fail before it
// ever reaches a rule.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid or truncated JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return map[string]string{"payload": "invalid json"}
	}
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return map[string]string{field: "has the wrong type"}
	}

	// Validation errors from binding tags, if a caller uses them.
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = "failed on '" + fe.Tag() + "'"
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}
