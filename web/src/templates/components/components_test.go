package components

import (
	"bytes"
	"testing"

	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/form"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestFieldLabelAndPlaceholder(t *testing.T) {
	assert.Equal(t, "Email", FieldLabel(form.FieldEmail))
	assert.Equal(t, "Password", FieldLabel(form.FieldPassword))
	assert.Equal(t, "Enter your name", Placeholder(form.FieldName))
}

func TestField(t *testing.T) {
	st := form.New(form.FieldEmail, form.FieldPassword).
		Update(form.FieldEmail, "a@b.com").
		Update(form.FieldPassword, "hunter2").
		WithFieldErrors(map[form.Field]string{form.FieldEmail: "Enter a valid email address."})

	email := render(t, Field(st, form.FieldEmail))
	assert.Contains(t, email, `type="email"`)
	assert.Contains(t, email, `value="a@b.com"`)
	assert.Contains(t, email, `placeholder="Enter your email"`)
	assert.Contains(t, email, "Enter a valid email address.")
	assert.Contains(t, email, `aria-invalid="true"`)

	password := render(t, Field(st, form.FieldPassword))
	assert.Contains(t, password, `type="password"`)
	assert.NotContains(t, password, "hunter2")
	assert.NotContains(t, password, "field-error")
}

func TestCSRFField(t *testing.T) {
	assert.Nil(t, CSRFField(auth.CSRF{}))
	html := render(t, CSRFField(auth.CSRF{FieldName: "csrf", Token: "tok"}))
	assert.Contains(t, html, `name="csrf"`)
	assert.Contains(t, html, `value="tok"`)
}

func TestSubmitButton(t *testing.T) {
	idle := render(t, SubmitButton(SubmitButtonProps{ID: "go", Label: "Continue →", LoadingLabel: "Signing In...", Accent: "accent-green"}))
	assert.NotContains(t, idle, "hx-disabled-elt")
	assert.Contains(t, idle, `class="btn-label">Continue →`)
	assert.NotContains(t, idle, "disabled>")

	busy := render(t, SubmitButton(SubmitButtonProps{ID: "go", Label: "Continue →", LoadingLabel: "Signing In...", Loading: true}))
	assert.Contains(t, busy, `class="btn-label">Signing In...`)
	assert.Contains(t, busy, " disabled")
}

func TestTile(t *testing.T) {
	tile, err := domain.TileByID(3)
	require.NoError(t, err)

	collapsed := render(t, Tile(tile, false))
	assert.Contains(t, collapsed, `hx-post="/dashboard/hover/3"`)
	assert.Contains(t, collapsed, `hx-trigger="mouseenter"`)
	assert.Contains(t, collapsed, `href="/recycling"`)
	assert.NotContains(t, collapsed, tile.StatLabel)

	expanded := render(t, Tile(tile, true))
	assert.Contains(t, expanded, `hx-delete="/dashboard/hover"`)
	assert.Contains(t, expanded, `hx-trigger="mouseleave"`)
	assert.Contains(t, expanded, `class="expanded tile"`)
	assert.Contains(t, expanded, tile.Description)
	assert.Contains(t, expanded, tile.StatLabel)

	for _, html := range []string{collapsed, expanded} {
		assert.Contains(t, html, `hx-sync="#tile-grid:replace"`, "hover requests replace each other")
	}
}

func TestCSRFHeaders(t *testing.T) {
	assert.Nil(t, CSRFHeaders(auth.CSRF{}))

	html := render(t, cmp.El("div", CSRFHeaders(auth.CSRF{HeaderName: "X-CSRF-Token", Token: "a+b="})))
	assert.Equal(t, `<div hx-headers="{&#34;X-CSRF-Token&#34;:&#34;a+b=&#34;}"></div>`, html)
}
