package pages

import (
	"github.com/nfrund/ecoshare/internal/form"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	"github.com/nfrund/ecoshare/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

const (
	LoginButtonLabel  = "Continue →"
	LoginLoadingLabel = "Signing In..."
	loginFormID       = "login-form"
)

// Login is the content of the login page.
func Login(data auth.LoginData) cmp.Node {
	return authCard("accent-green",
		g.H1(g.Class("card-title"), cmp.Text("Welcome Back")),
		g.P(g.Class("card-tagline"), cmp.Text("Continue your sustainable journey")),
		LoginForm(data),
		g.P(g.Class("card-footer"),
			cmp.Text("Don't have an account? "),
			g.A(g.Href("/signup"), cmp.Text("Sign up")),
		),
	)
}

// LoginForm is the form fragment swapped in place by htmx after a failed submission.
func LoginForm(data auth.LoginData) cmp.Node {
	return g.FormEl(
		g.ID(loginFormID),
		g.Method("post"),
		g.Action("/login"),
		g.Class("auth-form"),
		hx.Post("/login"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Indicator("#login-submit"),
		components.DisableWhileSubmitting(),
		components.CSRFField(data.CSRF),
		components.FormError(data.Form),
		cmp.Map(data.Form.Fields(), func(f form.Field) cmp.Node {
			return components.Field(data.Form, f)
		}),
		components.SubmitButton(components.SubmitButtonProps{
			ID:           "login-submit",
			Label:        LoginButtonLabel,
			LoadingLabel: LoginLoadingLabel,
			Accent:       "accent-green",
			Loading:      data.Form.Loading(),
		}),
	)
}

func authCard(accent string, children ...cmp.Node) cmp.Node {
	return g.Main(
		g.Class("auth-page"),
		g.Div(
			g.Class("card "+accent),
			cmp.Group(children),
		),
	)
}
