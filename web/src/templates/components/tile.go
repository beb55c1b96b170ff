package components

import (
	"fmt"

	"github.com/nfrund/ecoshare/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// TileGridID is the element swapped by every hover request.
const TileGridID = "tile-grid"

// Tile renders one dashboard tile. A collapsed tile asks for its expansion on
// mouseenter; the expanded tile asks for the collapse on mouseleave. Each tile therefore
// carries a single htmx request and re-rendering the grid under the pointer cannot loop.
// Requests are synced on the grid: moving straight to another tile aborts the pending
// collapse, so the last hover wins.
func Tile(tile domain.DashboardTile, expanded bool) cmp.Node {
	var hover cmp.Node
	if expanded {
		hover = cmp.Group{hx.Delete("/dashboard/hover"), hx.Trigger("mouseleave")}
	} else {
		hover = cmp.Group{hx.Post(fmt.Sprintf("/dashboard/hover/%d", tile.ID)), hx.Trigger("mouseenter")}
	}

	return g.Div(
		g.ID(fmt.Sprintf("tile-%d", tile.ID)),
		c.Classes{"tile": true, "expanded": expanded},
		hover,
		hx.Target("#"+TileGridID),
		hx.Swap("outerHTML"),
		cmp.Attr("hx-sync", "#"+TileGridID+":replace"),
		g.A(
			g.Href(tile.DestinationPath),
			g.Class("tile-link"),
			g.H3(g.Class("tile-title"), cmp.Text(tile.Title)),
			cmp.If(expanded, g.Div(
				g.Class("tile-details"),
				g.P(g.Class("tile-description"), cmp.Text(tile.Description)),
				g.Div(
					g.Class("tile-stat"),
					g.Span(cmp.Text(tile.StatLabel)),
					g.Span(cmp.Text("→")),
				),
			)),
		),
	)
}
