package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	appsession "github.com/nfrund/ecoshare/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newGuardedEcho(enabled bool) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(appsession.NewStore(testSessionSecret, false)))

	e.GET("/dashboard", func(c echo.Context) error {
		if IsAuthenticated(c) {
			return c.String(http.StatusOK, "Welcome back")
		}
		return c.String(http.StatusOK, "Welcome guest")
	}, RequireAuth(enabled, "/login"))

	// Stand-in for a successful login.
	e.POST("/login", func(c echo.Context) error {
		if err := appsession.SetAuthenticated(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func loginCookies(t *testing.T, e *echo.Echo) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	return rec.Result().Cookies()
}

func TestRequireAuth(t *testing.T) {
	t.Run("disabled guard lets unauthenticated users through", func(t *testing.T) {
		e := newGuardedEcho(false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome guest", rec.Body.String())
	})

	t.Run("enabled guard redirects unauthenticated users to login", func(t *testing.T) {
		e := newGuardedEcho(true)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("enabled guard admits authenticated users", func(t *testing.T) {
		e := newGuardedEcho(true)
		cookies := loginCookies(t, e)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome back", rec.Body.String())
	})
}
