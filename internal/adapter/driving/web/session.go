package web

import (
	"context"
	"net/http"

	"github.com/ericfisherdev/watchlist/internal/domain/model"
)

const sessionCookieName = "watchlist_session"

// contextKey is a private type so context values cannot collide across packages.
type contextKey string

const identityContextKey contextKey = "identity"

// setSessionCookie attaches the login token to the response.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // set true when served over HTTPS
	})
}

// clearSessionCookie removes the login token from the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken extracts the login token from the request, or "".
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// requireAuth wraps a handler so only the authenticated owner reaches it.
// Anonymous requests get a flash and a redirect to the login form. The
// resolved identity is injected into the request context.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.sessions.Resolve(r.Context(), sessionToken(r))
		if err != nil {
			setFlash(w, "Please log in first.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// identityFromContext returns the identity injected by requireAuth, or nil.
func identityFromContext(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(identityContextKey).(*model.Identity)
	return identity
}
