// Package model defines the core domain entities and their validation rules.
package model

import "unicode/utf8"

// MaxDisplayNameLength is the upper bound on the admin display name, in runes.
const MaxDisplayNameLength = 20

// Identity is the single administrative account. The application maintains
// exactly one identity row; creation and credential changes go through the
// account service's upsert.
type Identity struct {
	ID           int64
	DisplayName  string
	Username     string
	PasswordHash string
}

// ValidateDisplayName checks the settings-form display name: non-empty and at
// most MaxDisplayNameLength runes. Whitespace is not trimmed before counting.
func ValidateDisplayName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return &ValidationError{Field: "name", Reason: "must be at most 20 characters"}
	}
	return nil
}
