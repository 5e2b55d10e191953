package service

import "errors"

// ErrValidation is the sentinel wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// ValidationError carries the snake_case code returned to API clients.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return e.Code }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(code string) error {
	return &ValidationError{Code: code}
}

// ValidationCode returns the code of a ValidationError in err's chain, or "".
func ValidationCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
