package registration

import (
	"reflect"
	"testing"
)

func validInput() Input {
	return Input{
		Username:        "johndoe",
		PhoneNumber:     "1234567890",
		Email:           "a@b.com",
		Password:        "Abcdef12",
		ConfirmPassword: "Abcdef12",
	}
}

func TestValidateAccepted(t *testing.T) {
	res := Validate(validInput())
	if !res.Accepted() {
		t.Fatalf("expected accepted, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("accepted result must carry no errors, got %v", res.Errors)
	}
}

func TestValidateSingleFieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		field   string
		message string
	}{
		{
			name:    "username too short",
			mutate:  func(in *Input) { in.Username = "jo" },
			field:   "username",
			message: "must be at least 3 characters long",
		},
		{
			name:    "username missing",
			mutate:  func(in *Input) { in.Username = "" },
			field:   "username",
			message: "is required",
		},
		{
			name:    "phone too short",
			mutate:  func(in *Input) { in.PhoneNumber = "123456789" },
			field:   "phoneNumber",
			message: "must be at least 10 characters long",
		},
		{
			name:    "phone with letters",
			mutate:  func(in *Input) { in.PhoneNumber = "12345abcde" },
			field:   "phoneNumber",
			message: "must contain digits only",
		},
		{
			name:    "phone with separators",
			mutate:  func(in *Input) { in.PhoneNumber = "123-456-7890" },
			field:   "phoneNumber",
			message: "must contain digits only",
		},
		{
			name:    "malformed email",
			mutate:  func(in *Input) { in.Email = "not-an-email" },
			field:   "email",
			message: "must be a valid email address",
		},
		{
			name:    "password too short",
			mutate:  func(in *Input) { in.Password = "Ab1"; in.ConfirmPassword = "Ab1" },
			field:   "password",
			message: "must be at least 8 characters long",
		},
		{
			name:    "password missing uppercase and digit",
			mutate:  func(in *Input) { in.Password = "abcdefgh"; in.ConfirmPassword = "abcdefgh" },
			field:   "password",
			message: "must contain an uppercase letter, a lowercase letter and a digit",
		},
		{
			name:    "password missing digit",
			mutate:  func(in *Input) { in.Password = "Abcdefgh"; in.ConfirmPassword = "Abcdefgh" },
			field:   "password",
			message: "must contain an uppercase letter, a lowercase letter and a digit",
		},
		{
			name:    "password mismatch",
			mutate:  func(in *Input) { in.ConfirmPassword = "Abcdef13" },
			field:   "confirmPassword",
			message: "must match the password",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			res := Validate(in)
			if res.Accepted() {
				t.Fatal("expected rejection")
			}
			if len(res.Errors) != 1 {
				t.Fatalf("expected exactly one error, got %v", res.Errors)
			}
			got, ok := res.Errors[tc.field]
			if !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, res.Errors)
			}
			if got != tc.message {
				t.Fatalf("field %q: expected message %q, got %q", tc.field, tc.message, got)
			}
		})
	}
}

func TestValidateMismatchNeverBlamesPassword(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "Different1"
	res := Validate(in)
	if _, ok := res.Errors["password"]; ok {
		t.Fatalf("mismatch must attach to confirmPassword only, got %v", res.Errors)
	}
	if _, ok := res.Errors["confirmPassword"]; !ok {
		t.Fatalf("expected confirmPassword error, got %v", res.Errors)
	}
}

func TestValidateCollectsAllOffendingFields(t *testing.T) {
	in := Input{
		Username:        "jo",
		PhoneNumber:     "123",
		Email:           "nope",
		Password:        "short",
		ConfirmPassword: "different",
	}
	res := Validate(in)
	for _, field := range []string{"username", "phoneNumber", "email", "password", "confirmPassword"} {
		if _, ok := res.Errors[field]; !ok {
			t.Errorf("expected error on %q, got %v", field, res.Errors)
		}
	}
	if len(res.Errors) != 5 {
		t.Fatalf("expected one message per field, got %v", res.Errors)
	}
}

func TestValidateFirstRuleWinsPerField(t *testing.T) {
	// Short and non-digit at once: the length rule is checked first.
	in := validInput()
	in.PhoneNumber = "12a"
	res := Validate(in)
	if got := res.Errors["phoneNumber"]; got != "must be at least 10 characters long" {
		t.Fatalf("expected length error to win, got %q", got)
	}
}

func TestValidateEmptyInput(t *testing.T) {
	res := Validate(Input{})
	if len(res.Errors) != 5 {
		t.Fatalf("expected all five fields required, got %v", res.Errors)
	}
	for field, msg := range res.Errors {
		if msg != "is required" {
			t.Errorf("field %q: expected required message, got %q", field, msg)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	in := validInput()
	in.Username = "jo"
	in.Email = "bad"
	first := Validate(in)
	second := Validate(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation is not idempotent: %v vs %v", first, second)
	}
}
