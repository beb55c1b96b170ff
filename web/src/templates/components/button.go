package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SubmitButtonProps configures the submit button of an auth form.
type SubmitButtonProps struct {
	ID           string
	Label        string
	LoadingLabel string
	Accent       string
	Loading      bool
}

// SubmitButton renders a button that shows LoadingLabel while its request is in flight.
// htmx adds the htmx-request class to the button when the form names it as indicator.
// Disabling it is up to the form, see DisableWhileSubmitting.
func SubmitButton(p SubmitButtonProps) cmp.Node {
	return g.Button(
		g.ID(p.ID),
		g.Type("submit"),
		g.Class("btn "+p.Accent),
		cmp.If(p.Loading, g.Disabled()),
		g.Span(g.Class("btn-label"), cmp.Text(label(p))),
		g.Span(g.Class("btn-loading htmx-indicator"), cmp.Text(p.LoadingLabel)),
	)
}

// DisableWhileSubmitting goes on the form that issues the request. htmx disables the
// form's submit button until the response arrives.
func DisableWhileSubmitting() cmp.Node {
	return cmp.Attr("hx-disabled-elt", "find button[type=submit]")
}

func label(p SubmitButtonProps) string {
	if p.Loading {
		return p.LoadingLabel
	}
	return p.Label
}
