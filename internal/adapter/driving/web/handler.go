// Package web implements the HTML driving adapter: the five watchlist flows,
// the message board, and the error pages, served from embedded templates.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ericfisherdev/watchlist/internal/application"
	"github.com/ericfisherdev/watchlist/internal/domain/model"
	"github.com/ericfisherdev/watchlist/internal/domain/port/driven"
)

// Handler composes the application services into the page flows.
type Handler struct {
	catalog  *application.Catalog
	accounts *application.Account
	sessions *application.Sessions
	board    *application.Board
	renderer *Renderer
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	catalog *application.Catalog,
	accounts *application.Account,
	sessions *application.Sessions,
	board *application.Board,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		accounts: accounts,
		sessions: sessions,
		board:    board,
		renderer: NewRenderer(logger),
		logger:   logger,
	}
}

// basePage assembles the chrome every template needs: owner name, viewer
// authentication state, the pending flash, and the CSRF form token.
func (h *Handler) basePage(w http.ResponseWriter, r *http.Request) BasePage {
	base := BasePage{
		Flash:     popFlash(w, r),
		CSRFToken: ensureCSRF(w, r),
	}

	owner, err := h.accounts.Owner(r.Context())
	if err == nil {
		base.OwnerName = owner.DisplayName
	} else if !errors.Is(err, driven.ErrIdentityNotFound) {
		h.logger.Error("load owner", "error", err)
	}

	if _, err := h.sessions.Resolve(r.Context(), sessionToken(r)); err == nil {
		base.Authenticated = true
	}

	return base
}

// Index renders the movie list.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.List(r.Context())
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	base := h.basePage(w, r)
	base.Title = pageTitle(base.OwnerName)
	h.renderer.Render(w, http.StatusOK, "index.html", IndexPage{BasePage: base, Movies: movies})
}

// AddMovie handles the index form post. An anonymous post is a silent
// redirect back to the list; no flash, no change.
func (h *Handler) AddMovie(w http.ResponseWriter, r *http.Request) {
	if _, err := h.sessions.Resolve(r.Context(), sessionToken(r)); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	_, err := h.catalog.Add(r.Context(), r.FormValue("title"), r.FormValue("year"))
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		setFlash(w, "Invalid title or year length.")
	case err != nil:
		h.renderInternalError(w, r, err)
		return
	default:
		setFlash(w, "Item created.")
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// EditMovieForm renders the edit form for one entry.
func (h *Handler) EditMovieForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.catalog.Get(r.Context(), id)
	if errors.Is(err, driven.ErrMovieNotFound) {
		h.renderNotFound(w, r)
		return
	}
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	base := h.basePage(w, r)
	base.Title = "Edit Item"
	h.renderer.Render(w, http.StatusOK, "edit.html", EditPage{BasePage: base, Movie: *movie})
}

// UpdateMovie applies the edit form. A validation failure flashes and stays
// on the edit form; success returns to the list.
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	_, err := h.catalog.Update(r.Context(), id, r.FormValue("title"), r.FormValue("year"))
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		setFlash(w, "Invalid title or year length.")
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
	case errors.Is(err, driven.ErrMovieNotFound):
		h.renderNotFound(w, r)
	case err != nil:
		h.renderInternalError(w, r, err)
	default:
		setFlash(w, "Item updated.")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// DeleteMovie removes one entry.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	err := h.catalog.Delete(r.Context(), id)
	switch {
	case errors.Is(err, driven.ErrMovieNotFound):
		h.renderNotFound(w, r)
	case err != nil:
		h.renderInternalError(w, r, err)
	default:
		setFlash(w, "Item deleted.")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	base := h.basePage(w, r)
	base.Title = "Login"
	h.renderer.Render(w, http.StatusOK, "login.html", LoginPage{BasePage: base})
}

// Login attempts the session transition. Both the wrong-username and the
// wrong-password case produce the same generic message.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		setFlash(w, "Please enter both username and password.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	token, err := h.sessions.Login(r.Context(), username, password)
	if errors.Is(err, application.ErrBadCredentials) {
		setFlash(w, "Wrong username or password.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	setSessionCookie(w, token)
	setFlash(w, "Login success.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout destroys the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(sessionToken(r))
	clearSessionCookie(w)
	setFlash(w, "Goodbye.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// SettingsForm renders the display-name form.
func (h *Handler) SettingsForm(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	base := h.basePage(w, r)
	base.Title = "Settings"
	h.renderer.Render(w, http.StatusOK, "settings.html",
		SettingsPage{BasePage: base, DisplayName: identity.DisplayName})
}

// UpdateSettings applies a new display name for the owner.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	identity := identityFromContext(r.Context())

	err := h.accounts.UpdateDisplayName(r.Context(), identity.ID, r.FormValue("name"))
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		setFlash(w, "Invalid display name.")
		http.Redirect(w, r, "/settings", http.StatusFound)
	case err != nil:
		h.renderInternalError(w, r, err)
	default:
		setFlash(w, "Settings updated.")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Board renders the message board, newest post first.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	messages, err := h.board.List(r.Context())
	if err != nil {
		h.renderInternalError(w, r, err)
		return
	}

	views := make([]MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, MessageView{
			Username:  message.Username,
			HTML:      RenderMarkdownHTML(message.Content),
			CreatedAt: message.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	base := h.basePage(w, r)
	base.Title = "Message Board"
	h.renderer.Render(w, http.StatusOK, "messages.html", MessagesPage{BasePage: base, Messages: views})
}

// PostMessage adds a board post. Posting is open to anonymous visitors.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		h.renderBadRequest(w, r)
		return
	}

	_, err := h.board.Post(r.Context(), r.FormValue("username"), r.FormValue("content"))
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		setFlash(w, "Invalid name or message length.")
	case err != nil:
		h.renderInternalError(w, r, err)
		return
	default:
		setFlash(w, "Message posted.")
	}

	http.Redirect(w, r, "/messages", http.StatusFound)
}

// Health returns a simple liveness response for the healthcheck binary.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NotFound renders the dedicated 404 page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r)
}

// movieID parses the {id} path segment; a non-numeric id renders the 404
// page, matching the route's integer-only contract.
func (h *Handler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.renderNotFound(w, r)
		return 0, false
	}
	return id, true
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	base := h.basePage(w, r)
	base.Title = "Page Not Found"
	h.renderer.Render(w, http.StatusNotFound, "errors/404.html", ErrorPage{BasePage: base})
}

func (h *Handler) renderBadRequest(w http.ResponseWriter, r *http.Request) {
	base := h.basePage(w, r)
	base.Title = "Bad Request"
	h.renderer.Render(w, http.StatusBadRequest, "errors/400.html", ErrorPage{BasePage: base})
}

func (h *Handler) renderInternalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal error", "path", r.URL.Path, "error", err)
	base := h.basePage(w, r)
	base.Title = "Internal Server Error"
	h.renderer.Render(w, http.StatusInternalServerError, "errors/500.html", ErrorPage{BasePage: base})
}
