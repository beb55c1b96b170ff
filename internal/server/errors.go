package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/navigation"
	"github.com/nfrund/ecoshare/internal/rendering"
	"github.com/nfrund/ecoshare/internal/view"
	"github.com/nfrund/ecoshare/web/src/templates/layouts"
	"github.com/nfrund/ecoshare/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

// setupErrorHandling installs the central error handler. Paths missing from nav get the not
// found page, other HTTP errors a generic page, and unhandled errors are logged with a stack
// trace.
func setupErrorHandling(e *echo.Echo, renderer rendering.Renderer, nav navigation.Table) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again."

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
				message = msg
			}
			if status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request().Context(), "HTTP error", "status", status, "error", err, "internal", he.Internal)
			}
		} else {
			slog.ErrorContext(c.Request().Context(), "Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}

		var page cmp.Node
		title := "Error"
		if status == http.StatusNotFound {
			path := c.Request().URL.Path
			if _, lerr := nav.Lookup(path); errors.Is(lerr, domain.ErrNoRoute) {
				slog.DebugContext(c.Request().Context(), "Unknown path", "error", lerr, "coming_soon", comingSoon(path))
			}
			title = "Not Found"
			page = pages.NotFound(path, comingSoon(path))
		} else {
			page = pages.Error(message)
		}

		if rerr := renderer.RenderPage(c, status, layouts.Base(title, view.FlashData{}, page)); rerr != nil {
			slog.ErrorContext(c.Request().Context(), "Failed to render error page", "error", rerr)
			_ = c.String(status, fmt.Sprintf("%d %s", status, http.StatusText(status)))
		}
	}
}

// comingSoon reports whether path is the destination of a dashboard tile.
func comingSoon(path string) bool {
	for _, t := range domain.Tiles() {
		if t.DestinationPath == path {
			return true
		}
	}
	return false
}
