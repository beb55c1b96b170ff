// Package session wraps the cookie session that carries the submission key and the
// optional "is authenticated" flag.
package session

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the cookie name of the application session.
	Name = "ecoshare-session"

	keyID            = "sid"
	keyAuthenticated = "authenticated"
)

// NewStore creates the cookie store used by the session middleware.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// EnsureID returns the session's submission key, creating and saving one if needed.
func EnsureID(c echo.Context) (string, error) {
	sess, err := session.Get(Name, c)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if id, ok := sess.Values[keyID].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Values[keyID] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

// IsAuthenticated reports whether the browser completed a login or signup.
// Any problem reading the session counts as unauthenticated.
func IsAuthenticated(c echo.Context) bool {
	sess, err := session.Get(Name, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values[keyAuthenticated].(bool)
	return ok
}

// SetAuthenticated marks the session as authenticated.
func SetAuthenticated(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	sess.Values[keyAuthenticated] = true
	return sess.Save(c.Request(), c.Response())
}

// Clear drops the authenticated flag and the submission key, and expires the cookie.
func Clear(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	delete(sess.Values, keyAuthenticated)
	delete(sess.Values, keyID)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
