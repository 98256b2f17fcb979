package service

import "errors"

// ErrNotFound means a referenced row no longer exists. Callers treat it
// as a benign race (e.g. a concurrent delete), not a crash.
var ErrNotFound = errors.New("not found")

// ValidationError is bad user input; it blocks the mutation before any
// write happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
