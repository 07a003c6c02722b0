package web

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// NewServeMux registers all routes and wraps the mux with logging and
// recovery middleware. Recovery sits innermost so panics are caught before
// the request is logged.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Static assets (embedded via go:embed).
	staticContent, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticContent)))

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /{$}", h.AddMovie)
	mux.HandleFunc("GET /movie/edit/{id}", h.requireAuth(h.EditMovieForm))
	mux.HandleFunc("POST /movie/edit/{id}", h.requireAuth(h.UpdateMovie))
	mux.HandleFunc("POST /movie/delete/{id}", h.requireAuth(h.DeleteMovie))
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /logout", h.requireAuth(h.Logout))
	mux.HandleFunc("GET /settings", h.requireAuth(h.SettingsForm))
	mux.HandleFunc("POST /settings", h.requireAuth(h.UpdateSettings))
	mux.HandleFunc("GET /messages", h.Board)
	mux.HandleFunc("POST /messages", h.PostMessage)
	mux.HandleFunc("GET /healthz", h.Health)

	// Everything else gets the dedicated 404 page.
	mux.HandleFunc("/", h.NotFound)

	wrapped := recoveryMiddleware(logger, h.renderer, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}
