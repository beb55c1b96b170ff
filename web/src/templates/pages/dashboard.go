package pages

import (
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/view/dto/dashboard"
	"github.com/nfrund/ecoshare/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var socialLinks = []string{"Facebook", "Twitter", "Instagram", "LinkedIn", "Email"}

// Dashboard is the content of the dashboard page.
func Dashboard(data dashboard.Data) cmp.Node {
	return cmp.Group{
		g.Header(
			g.Class("dash-header"),
			g.H1(cmp.Text("EcoShare Dashboard")),
			cmp.If(data.Authenticated, g.A(g.Href("/logout"), g.Class("logout"), cmp.Text("Log out"))),
		),
		g.Main(g.Class("dash-main"), TileGrid(data)),
		dashboardFooter(),
	}
}

// TileGrid is the fragment returned by the hover endpoints. At most one tile is expanded.
func TileGrid(data dashboard.Data) cmp.Node {
	return g.Div(
		g.ID(components.TileGridID),
		g.Class("tile-grid"),
		components.CSRFHeaders(data.CSRF),
		cmp.Map(data.Tiles, func(t domain.DashboardTile) cmp.Node {
			return components.Tile(t, data.Hover.Expanded(t.ID))
		}),
	)
}

func dashboardFooter() cmp.Node {
	return g.Footer(
		g.Class("dash-footer"),
		g.Section(
			g.H4(cmp.Text("About EcoShare")),
			g.P(cmp.Text("EcoShare is a registered platform dedicated to fostering sustainable communities through resource sharing and environmental initiatives.")),
		),
		g.Section(
			g.H4(cmp.Text("Connect With Us")),
			g.Ul(g.Class("social"),
				cmp.Map(socialLinks, func(name string) cmp.Node {
					return g.Li(g.A(g.Href("#"), cmp.Text(name)))
				}),
			),
		),
		g.Section(
			g.H4(cmp.Text("Legal")),
			g.P(
				cmp.Text("© 2024 EcoShare. All rights reserved."), g.Br(),
				cmp.Text("Registered Company No: 12345678"), g.Br(),
				cmp.Text("Green Business Certified"),
			),
		),
	)
}
