package service

import "errors"

// Sentinel errors shared across the service layer. Handlers map these to
// HTTP statuses and machine-readable codes in one place.
var (
	// ErrNotFound covers both a missing record and a malformed id; the
	// distinction is deliberately not leaked to clients.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but is not the owner
	// of the resource it tried to mutate.
	ErrForbidden = errors.New("forbidden")

	// ErrEmailTaken is returned by registration when the email is in use.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUpstream wraps failures of the external image host.
	ErrUpstream = errors.New("image storage failure")
)

// ValidationError carries a field-level message for a rejected request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError.
func Validationf(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
