// Package form holds the state of one screen's form. Every transition returns a new
// State; a State is never modified in place.
package form

import (
	"maps"

	"github.com/nfrund/ecoshare/internal/domain"
)

// Field names a form input.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// State is the owned state of a form instance.
type State struct {
	fields      []Field
	values      map[Field]string
	fieldErrors map[Field]string
	loading     bool
	err         string
	result      *domain.SubmitResult
}

// New creates an empty, idle form with the given fields in display order.
func New(fields ...Field) State {
	values := make(map[Field]string, len(fields))
	for _, f := range fields {
		values[f] = ""
	}
	return State{
		fields: append([]Field(nil), fields...),
		values: values,
	}
}

// Fields returns the form fields in display order.
func (s State) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Value returns the current value of f.
func (s State) Value(f Field) string {
	return s.values[f]
}

// Loading reports whether a submission is in flight.
func (s State) Loading() bool {
	return s.loading
}

// Error is the form-level message, empty when there is none.
func (s State) Error() string {
	return s.err
}

// FieldError returns the validation message for f, empty when the field is valid.
func (s State) FieldError(f Field) string {
	return s.fieldErrors[f]
}

// HasFieldErrors reports whether any field failed validation.
func (s State) HasFieldErrors() bool {
	return len(s.fieldErrors) > 0
}

// Result is the outcome of the last finished submission, if any.
func (s State) Result() (domain.SubmitResult, bool) {
	if s.result == nil {
		return domain.SubmitResult{}, false
	}
	return *s.result, true
}

// Update replaces the value of one field. Unknown fields are ignored. Editing a
// field clears its validation message.
func (s State) Update(f Field, value string) State {
	if _, ok := s.values[f]; !ok {
		return s
	}
	next := s.clone()
	next.values[f] = value
	delete(next.fieldErrors, f)
	return next
}

// Missing lists the fields that are still empty, in display order.
func (s State) Missing() []Field {
	var out []Field
	for _, f := range s.fields {
		if s.values[f] == "" {
			out = append(out, f)
		}
	}
	return out
}

// WithFieldErrors attaches validation messages.
func (s State) WithFieldErrors(errs map[Field]string) State {
	next := s.clone()
	for f, msg := range errs {
		next.fieldErrors[f] = msg
	}
	return next
}

// Begin moves the form into the loading state. It fails with
// domain.ErrSubmissionInFlight when a submission is already running, and with
// domain.ErrValidation when required fields are empty or invalid.
func (s State) Begin() (State, error) {
	if s.loading {
		return s, domain.ErrSubmissionInFlight
	}
	if missing := s.Missing(); len(missing) > 0 {
		errs := make(map[Field]string, len(missing))
		for _, f := range missing {
			errs[f] = "This field is required."
		}
		return s.WithFieldErrors(errs), domain.ErrValidation
	}
	if s.HasFieldErrors() {
		return s, domain.ErrValidation
	}
	next := s.clone()
	next.loading = true
	next.err = ""
	next.result = nil
	return next, nil
}

// Finish leaves the loading state whatever the outcome, and records the result.
func (s State) Finish(r domain.SubmitResult) State {
	next := s.clone()
	next.loading = false
	next.result = &r
	next.err = r.UserMessage()
	return next
}

// WithoutSecrets blanks the password so it is never echoed back to the page.
func (s State) WithoutSecrets() State {
	if _, ok := s.values[FieldPassword]; !ok {
		return s
	}
	next := s.clone()
	next.values[FieldPassword] = ""
	return next
}

func (s State) clone() State {
	next := s
	next.fields = append([]Field(nil), s.fields...)
	next.values = maps.Clone(s.values)
	next.fieldErrors = maps.Clone(s.fieldErrors)
	if next.fieldErrors == nil {
		next.fieldErrors = map[Field]string{}
	}
	return next
}
