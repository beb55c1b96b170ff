// Package navigation holds the routing table of the web client: which path shows
// which screen, and which paths only redirect.
package navigation

import (
	"fmt"
	"strings"

	"github.com/nfrund/ecoshare/internal/domain"
)

// Screen is one full-page view bound to a route.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenSignup    Screen = "signup"
	ScreenDashboard Screen = "dashboard"
)

const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathDashboard = "/dashboard"
	PathLogout    = "/logout"
)

// Route maps a path to exactly one screen, or to a redirect target.
type Route struct {
	Path       string
	Screen     Screen
	RedirectTo string
	// Protected routes go through the auth guard when it is enabled.
	Protected bool
}

// IsRedirect reports whether the route only forwards to another path.
func (r Route) IsRedirect() bool {
	return r.RedirectTo != ""
}

// Table is the ordered list of routes the client knows about.
type Table []Route

// Default is the routing table of the application.
func Default() Table {
	return Table{
		{Path: PathRoot, RedirectTo: PathLogin},
		{Path: PathLogin, Screen: ScreenLogin},
		{Path: PathSignup, Screen: ScreenSignup},
		{Path: PathDashboard, Screen: ScreenDashboard, Protected: true},
	}
}

// Lookup finds the route registered for path. Trailing slashes are ignored except for
// the root itself. Unknown paths return domain.ErrNoRoute.
func (t Table) Lookup(path string) (Route, error) {
	clean := normalize(path)
	for _, r := range t {
		if r.Path == clean {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("%w: %s", domain.ErrNoRoute, path)
}

// Resolve follows redirects until it reaches a screen.
func (t Table) Resolve(path string) (Screen, error) {
	seen := map[string]bool{}
	for {
		r, err := t.Lookup(path)
		if err != nil {
			return "", err
		}
		if !r.IsRedirect() {
			return r.Screen, nil
		}
		if seen[r.Path] {
			return "", fmt.Errorf("redirect loop at %s", r.Path)
		}
		seen[r.Path] = true
		path = r.RedirectTo
	}
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return PathRoot
	}
	return path
}
