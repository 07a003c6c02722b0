package web

import (
	"html/template"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
)

// BasePage carries the fields every template needs: page chrome, the viewer's
// authentication state, one-shot flash messages, and the CSRF form token.
type BasePage struct {
	Title         string
	OwnerName     string
	Authenticated bool
	Flash         string
	CSRFToken     string
}

// IndexPage renders the movie list plus the add form for authenticated owners.
type IndexPage struct {
	BasePage
	Movies []model.Movie
}

// EditPage renders the edit form for one movie entry.
type EditPage struct {
	BasePage
	Movie model.Movie
}

// LoginPage renders the login form.
type LoginPage struct {
	BasePage
}

// SettingsPage renders the display-name form.
type SettingsPage struct {
	BasePage
	DisplayName string
}

// MessageView is one board post with its content already rendered to
// sanitized HTML.
type MessageView struct {
	Username  string
	HTML      template.HTML
	CreatedAt string
}

// MessagesPage renders the message board.
type MessagesPage struct {
	BasePage
	Messages []MessageView
}

// ErrorPage renders the dedicated 400/404/500 views.
type ErrorPage struct {
	BasePage
}
