package layouts

import (
	"github.com/nfrund/ecoshare/internal/view"
	"github.com/nfrund/ecoshare/web/src/templates/partials"
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

// HTMXScript is the htmx build loaded by every page.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shared by every screen. The flash
// partial is a templ component rendered through the adapter.
func Base(title string, flash view.FlashData, content cmp.Node) cmp.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []cmp.Node{
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			g.Script(g.Src(HTMXScript), g.Defer()),
		},
		Body: []cmp.Node{
			g.Class("eco-body"),
			view.AdaptTemplToGomponent(partials.Flash(flash)),
			content,
		},
	})
}
