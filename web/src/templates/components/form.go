package components

import (
	"encoding/json"

	"github.com/nfrund/ecoshare/internal/form"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var titleCaser = cases.Title(language.English)

// FieldLabel is the visible label of a form field, e.g. "Email".
func FieldLabel(f form.Field) string {
	return titleCaser.String(string(f))
}

// Placeholder is the hint shown in an empty input.
func Placeholder(f form.Field) string {
	return "Enter your " + string(f)
}

func inputType(f form.Field) string {
	switch f {
	case form.FieldPassword:
		return "password"
	case form.FieldEmail:
		return "email"
	default:
		return "text"
	}
}

// Field renders the label, input and error message of one form field. The password is
// never echoed back.
func Field(st form.State, f form.Field) cmp.Node {
	id := "field-" + string(f)
	errMsg := st.FieldError(f)

	value := st.Value(f)
	if f == form.FieldPassword {
		value = ""
	}

	return g.Div(
		g.Class("field"),
		g.Label(g.For(id), g.Class("field-label"), cmp.Text(FieldLabel(f))),
		g.Input(
			g.ID(id),
			g.Name(string(f)),
			g.Type(inputType(f)),
			g.Value(value),
			g.Placeholder(Placeholder(f)),
			g.Required(),
			cmp.If(errMsg != "", cmp.Attr("aria-invalid", "true")),
			g.Class("field-input"),
		),
		cmp.If(errMsg != "", g.P(g.Class("field-error"), cmp.Text(errMsg))),
	)
}

// FormError renders the form-level error, if any.
func FormError(st form.State) cmp.Node {
	if st.Error() == "" {
		return nil
	}
	return g.Div(g.Class("form-error"), cmp.Attr("role", "alert"), cmp.Text(st.Error()))
}

// CSRFField renders the hidden token input. Nothing is rendered when protection is off.
func CSRFField(csrf auth.CSRF) cmp.Node {
	if csrf.FieldName == "" {
		return nil
	}
	return g.Input(g.Type("hidden"), g.Name(csrf.FieldName), g.Value(csrf.Token))
}

// CSRFHeaders makes htmx send the token as a header with every request issued from
// inside the element. Nothing is rendered when protection is off.
func CSRFHeaders(csrf auth.CSRF) cmp.Node {
	if csrf.HeaderName == "" {
		return nil
	}
	headers, err := json.Marshal(map[string]string{csrf.HeaderName: csrf.Token})
	if err != nil {
		return nil
	}
	return cmp.Attr("hx-headers", string(headers))
}
