package auth

import "github.com/nfrund/ecoshare/internal/form"

// CSRF carries the token of the CSRF middleware, sent as a hidden form field or as a
// request header by htmx. The zero value means protection is disabled.
type CSRF struct {
	FieldName  string
	HeaderName string
	Token      string
}

// LoginData is a View Model (DTO) used specifically for the login page.
type LoginData struct {
	Form form.State
	CSRF CSRF
}

// SignupData is the View Model for the signup page.
type SignupData struct {
	Form    form.State
	CSRF    CSRF
	Variant SignupVariant
}
