package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer defines the contract for rendering any supported component (templ or gomponents).
type Renderer interface {
	// RenderComponent renders a component to bytes. Used for htmx fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTML response with the given status.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles both templ components and gomponents nodes. It also
// implements echo.Renderer so handlers can call c.Render(status, "", component).
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing the package here.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T: must be templ.Component or implement Render(io.Writer) error", component)
	}
}

// RenderComponent implements the Renderer interface.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The component is rendered into a
// buffer first so a failure can still produce a clean 500.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer. The component travels in data; name is ignored.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
