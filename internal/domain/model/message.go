package model

import (
	"time"
	"unicode/utf8"
)

// Field length limits for message board posts, in runes.
const (
	MaxMessageUsernameLength = 20
	MaxMessageContentLength  = 200
)

// Message is one message board post. Posts are open to anonymous visitors,
// who sign with a free-form username.
type Message struct {
	ID        int64
	Username  string
	Content   string
	CreatedAt time.Time
}

// Validate checks the poster name (1-20 runes) and content (1-200 runes).
func (m Message) Validate() error {
	if m.Username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(m.Username) > MaxMessageUsernameLength {
		return &ValidationError{Field: "username", Reason: "must be at most 20 characters"}
	}
	if m.Content == "" {
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(m.Content) > MaxMessageContentLength {
		return &ValidationError{Field: "content", Reason: "must be at most 200 characters"}
	}
	return nil
}
