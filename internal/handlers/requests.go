package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/ecoshare/internal/form"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator. Validation errors are reported under the
// form field name rather than the Go struct field name.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest defines the DTO for the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupRequest defines the DTO for the signup form.
type SignupRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	// Variant only selects the page flavour to re-render.
	Variant string `form:"variant"`
}

// fieldErrors maps validator errors to one message per form field. ok is false when
// err is not a validation error.
func fieldErrors(err error) (errs map[form.Field]string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	errs = make(map[form.Field]string, len(verrs))
	for _, fe := range verrs {
		f := form.Field(fe.Field())
		if _, seen := errs[f]; seen {
			continue
		}
		errs[f] = validationMessage(fe.Tag())
	}
	return errs, true
}

func validationMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	default:
		return "This value is not valid."
	}
}
