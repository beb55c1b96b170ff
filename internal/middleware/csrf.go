package middleware

import (
	"crypto/sha256"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

const (
	// CSRFFieldName is the hidden form field carrying the token.
	CSRFFieldName = "csrf"
	// CSRFHeaderName lets htmx send the token as a header instead.
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRF protects unsafe methods with gorilla/csrf. secure must match whether the site is
// served over HTTPS: on plain HTTP the request is marked as such so that the
// Referer check for TLS does not reject every form post.
func CSRF(secret string, secure bool) echo.MiddlewareFunc {
	// gorilla/csrf wants a 32 byte key.
	key := sha256.Sum256([]byte("csrf:" + secret))

	sameSite := csrf.SameSiteStrictMode
	if !secure {
		sameSite = csrf.SameSiteLaxMode
	}

	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.CookieName("csrf"),
		csrf.FieldName(CSRFFieldName),
		csrf.RequestHeader(CSRFHeaderName),
		csrf.Path("/"),
		csrf.SameSite(sameSite),
		csrf.MaxAge(3600),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.WarnContext(r.Context(), "CSRF validation failed", "reason", csrf.FailureReason(r), "path", r.URL.Path)
			http.Error(w, "Forbidden - invalid or missing CSRF token", http.StatusForbidden)
		})),
	)

	wrapped := echo.WrapMiddleware(protect)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := wrapped(next)
		return func(c echo.Context) error {
			if !secure {
				c.SetRequest(csrf.PlaintextHTTPRequest(c.Request()))
			}
			return h(c)
		}
	}
}

// CSRFToken returns the token for the current request, empty when CSRF is disabled.
func CSRFToken(c echo.Context) string {
	return csrf.Token(c.Request())
}
