package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Redirect returns a handler that replaces the current URL with to.
func Redirect(to string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusFound, to)
	}
}

// Health reports that the server is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
