package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return hxhttp.IsRequest(c.Request().Header)
}

// navigate sends the browser to path after a successful submission. htmx requests get an
// HX-Redirect header since a 303 would be followed inside the XHR.
func navigate(c echo.Context, path string) error {
	if isHTMX(c) {
		hxhttp.SetRedirect(c.Response().Header(), path)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// formStatus is the status of a re-rendered form. htmx does not swap error responses,
// so those requests always get 200.
func formStatus(c echo.Context, status int) int {
	if isHTMX(c) {
		return http.StatusOK
	}
	return status
}

// csrfData returns the hidden field for the current request. It is empty when CSRF
// protection is disabled.
func csrfData(c echo.Context) auth.CSRF {
	token := middleware.CSRFToken(c)
	if token == "" {
		return auth.CSRF{}
	}
	return auth.CSRF{
		FieldName:  middleware.CSRFFieldName,
		HeaderName: middleware.CSRFHeaderName,
		Token:      token,
	}
}
