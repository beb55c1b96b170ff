package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/dashboard"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/rendering"
	"github.com/nfrund/ecoshare/internal/view"
	dashdto "github.com/nfrund/ecoshare/internal/view/dto/dashboard"
	"github.com/nfrund/ecoshare/web/src/templates/layouts"
	"github.com/nfrund/ecoshare/web/src/templates/pages"
)

// DashboardHandler handles the dashboard page and its hover fragments.
type DashboardHandler struct {
	renderer rendering.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(renderer rendering.Renderer) *DashboardHandler {
	return &DashboardHandler{renderer: renderer}
}

// DashboardGet shows the dashboard with every tile collapsed.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	data := dashdto.NewData(dashboard.HoverState{}, middleware.IsAuthenticated(c), csrfData(c))
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Dashboard", view.GetFlashData(c), pages.Dashboard(data)))
}

// TileEnter returns the tile grid with the tile :id expanded (POST /dashboard/hover/:id).
func (h *DashboardHandler) TileEnter(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown dashboard tile").SetInternal(err)
	}

	hover, err := dashboard.HoverState{}.Enter(id)
	if errors.Is(err, domain.ErrUnknownTile) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown dashboard tile").SetInternal(err)
	}
	if err != nil {
		return err
	}

	return h.renderer.RenderPage(c, http.StatusOK, pages.TileGrid(dashdto.NewData(hover, middleware.IsAuthenticated(c), csrfData(c))))
}

// TileLeave returns the tile grid with every tile collapsed (DELETE /dashboard/hover).
func (h *DashboardHandler) TileLeave(c echo.Context) error {
	hover := dashboard.HoverState{}.Leave()
	return h.renderer.RenderPage(c, http.StatusOK, pages.TileGrid(dashdto.NewData(hover, middleware.IsAuthenticated(c), csrfData(c))))
}
