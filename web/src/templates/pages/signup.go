package pages

import (
	"github.com/nfrund/ecoshare/internal/form"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	"github.com/nfrund/ecoshare/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Signup is the content of the signup page. All variants share the same form and
// behaviour.
func Signup(data auth.SignupData) cmp.Node {
	return authCard(data.Variant.Accent,
		g.H1(g.Class("card-title"), cmp.Text(data.Variant.Heading)),
		g.P(g.Class("card-tagline"), cmp.Text(data.Variant.Tagline)),
		SignupForm(data),
		g.P(g.Class("card-footer"),
			cmp.Text("Already have an account? "),
			g.A(g.Href("/login"), cmp.Text("Log in")),
		),
	)
}

// SignupForm is the form fragment swapped in place by htmx after a failed submission.
func SignupForm(data auth.SignupData) cmp.Node {
	return g.FormEl(
		g.ID("signup-form"),
		g.Method("post"),
		g.Action("/signup"),
		g.Class("auth-form"),
		hx.Post("/signup"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Indicator("#signup-submit"),
		components.DisableWhileSubmitting(),
		components.CSRFField(data.CSRF),
		g.Input(g.Type("hidden"), g.Name("variant"), g.Value(data.Variant.Name)),
		components.FormError(data.Form),
		cmp.Map(data.Form.Fields(), func(f form.Field) cmp.Node {
			return components.Field(data.Form, f)
		}),
		components.SubmitButton(components.SubmitButtonProps{
			ID:           "signup-submit",
			Label:        data.Variant.ButtonLabel,
			LoadingLabel: data.Variant.LoadingLabel,
			Accent:       data.Variant.Accent,
			Loading:      data.Form.Loading(),
		}),
	)
}
