package model

import "fmt"

// ValidationError reports a user-correctable field violation. Handlers surface
// it as a flash message and leave stored state untouched.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
