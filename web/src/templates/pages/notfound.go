package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NotFound is shown for unknown paths. Paths that are known to be planned get a
// "coming soon" note instead of a plain not found message.
func NotFound(path string, comingSoon bool) cmp.Node {
	message := "The page " + path + " does not exist."
	if comingSoon {
		message = "The page " + path + " is coming soon."
	}

	return g.Main(
		g.Class("auth-page"),
		g.Div(
			g.Class("card"),
			g.H1(g.Class("card-title"), cmp.Text("Page not found")),
			g.P(g.Class("card-tagline"), cmp.Text(message)),
			g.A(g.Href("/login"), g.Class("btn accent-green"), cmp.Text("Back to login")),
		),
	)
}

// Error is shown when a request failed on the server.
func Error(message string) cmp.Node {
	return g.Main(
		g.Class("auth-page"),
		g.Div(
			g.Class("card"),
			g.H1(g.Class("card-title"), cmp.Text("Something went wrong")),
			g.P(g.Class("card-tagline"), cmp.Text(message)),
			g.A(g.Href("/login"), g.Class("btn accent-green"), cmp.Text("Back to login")),
		),
	)
}
