package usecase

import (
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned for any failed login. It never reveals
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError collects the user-facing messages for structural and
// uniqueness failures so all of them surface in one response.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
