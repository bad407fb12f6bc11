// Package auth gates the admin API behind a cookie-backed session flag.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/goshop/catalog-api/app/api"
)

const (
	sessionName = "shop_session"
	adminKey    = "admin_logged_in"

	// rememberMaxAge keeps the admin session alive beyond the browser
	// session, mirroring a "remember me" login.
	rememberMaxAge = 30 * 24 * 60 * 60
)

type Sessions struct {
	store    *sessions.CookieStore
	password string
}

func NewSessions(secret []byte, adminPassword string) *Sessions {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{
		store:    store,
		password: adminPassword,
	}
}

// IsAdmin reports whether the request carries an authenticated admin
// session. A missing or undecodable cookie counts as anonymous.
func (s *Sessions) IsAdmin(r *http.Request) bool {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	flag, ok := session.Values[adminKey].(bool)
	return ok && flag
}

// HandleLogin authenticates via GET /admin/{password}. The password travels
// in the URL path for compatibility with the existing admin frontend.
func (s *Sessions) HandleLogin(w http.ResponseWriter, r *http.Request) {
	supplied := r.PathValue("password")
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.password)) != 1 {
		api.Error(w, http.StatusUnauthorized, "wrong admin password")
		return
	}

	session, _ := s.store.Get(r, sessionName)
	session.Values[adminKey] = true
	session.Options.MaxAge = rememberMaxAge
	if err := session.Save(r, w); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged in"})
}

// HandleLogout clears the admin flag and sends the client back to the
// storefront.
func (s *Sessions) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, adminKey)
	session.Options.MaxAge = -1
	_ = session.Save(r, w)

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleCheckAuth reports the current session state without side effects.
func (s *Sessions) HandleCheckAuth(w http.ResponseWriter, r *http.Request) {
	if s.IsAdmin(r) {
		api.WriteJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
		return
	}
	api.WriteJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
}

// RequireAdmin short-circuits admin-scoped requests with 401 before the
// wrapped handler runs, so unauthenticated calls produce no side effects.
func (s *Sessions) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.IsAdmin(r) {
			api.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
