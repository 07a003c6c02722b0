package model

import "unicode/utf8"

// Field length limits for movie entries, in runes.
const (
	MaxTitleLength = 60
	MaxYearLength  = 4
)

// Movie is one watchlist entry. Year is stored as text, not parsed as an
// integer, so entries like "199X" round-trip unchanged. Duplicate title/year
// pairs are allowed.
type Movie struct {
	ID    int64
	Title string
	Year  string
}

// Validate checks both field constraints. Title must be 1-60 runes and year
// 1-4 runes; neither field is trimmed before counting.
func (m Movie) Validate() error {
	if m.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(m.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Reason: "must be at most 60 characters"}
	}
	if m.Year == "" {
		return &ValidationError{Field: "year", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(m.Year) > MaxYearLength {
		return &ValidationError{Field: "year", Reason: "must be at most 4 characters"}
	}
	return nil
}
