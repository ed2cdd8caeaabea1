package registration

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The package-level validator is configured once and is safe for concurrent
// use; Validate itself is pure and keeps no state between calls.
var validate = newValidate()

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

func newValidate() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field names (username, phoneNumber, ...).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	// One uppercase letter, one lowercase letter, one decimal digit.
	v.RegisterAlias("mixedpwd", "containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789")
	return v
}

// Validate checks an Input against the registration rules and returns either
// an accepted Result or one message per offending field. The first failing
// rule per field wins; all fields are always evaluated so a caller can render
// every error at once.
func Validate(in Input) Result {
	err := validate.Struct(in)
	if err == nil {
		return Result{}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// validator.Struct only returns InvalidValidationError for
		// non-struct values, which Input never is.
		return Result{Errors: map[string]string{"input": "invalid input"}}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, ok := out[fe.Field()]; ok {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return Result{Errors: out}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "digits":
		return "must contain digits only"
	case "email":
		return "must be a valid email address"
	case "mixedpwd", "containsany":
		return "must contain an uppercase letter, a lowercase letter and a digit"
	case "eqfield":
		return "must match the password"
	default:
		return "is invalid"
	}
}
