package registration

// Input is the five-field record submitted from the create-account form.
// Tag order encodes rule order: syntactic rules first, the cross-field
// password match last, attached to confirmPassword.
type Input struct {
	Username        string `json:"username" validate:"required,min=3"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,min=10,digits"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,mixedpwd"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Result is the outcome of validating an Input. An empty error map means the
// input was accepted.
type Result struct {
	Errors map[string]string `json:"errors,omitempty"`
}

// Accepted reports whether every field satisfied its rules.
func (r Result) Accepted() bool { return len(r.Errors) == 0 }
