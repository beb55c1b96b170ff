package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/activity"
	"github.com/nfrund/ecoshare/internal/backend"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/form"
	"github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/navigation"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/rendering"
	"github.com/nfrund/ecoshare/internal/session"
	"github.com/nfrund/ecoshare/internal/submit"
	"github.com/nfrund/ecoshare/internal/view"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
	"github.com/nfrund/ecoshare/web/src/templates/layouts"
	"github.com/nfrund/ecoshare/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

const (
	formLogin  = "login"
	formSignup = "signup"
)

// AuthHandler handles the login and signup screens.
type AuthHandler struct {
	backend   backend.Authenticator
	guard     *submit.Guard
	publisher pubsub.Publisher
	renderer  rendering.Renderer
}

// NewAuthHandler creates a new AuthHandler. publisher may be nil, in which case no
// events are published.
func NewAuthHandler(authn backend.Authenticator, guard *submit.Guard, publisher pubsub.Publisher, renderer rendering.Renderer) *AuthHandler {
	return &AuthHandler{
		backend:   authn,
		guard:     guard,
		publisher: publisher,
		renderer:  renderer,
	}
}

func newLoginForm() form.State {
	return form.New(form.FieldEmail, form.FieldPassword)
}

func newSignupForm() form.State {
	return form.New(form.FieldName, form.FieldEmail, form.FieldPassword)
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	h.ensureSession(c)

	data := auth.LoginData{Form: newLoginForm(), CSRF: csrfData(c)}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Login", view.GetFlashData(c), pages.Login(data)))
}

// LoginPost handles the login form submission (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission").SetInternal(err)
	}

	st := newLoginForm().
		Update(form.FieldEmail, req.Email).
		Update(form.FieldPassword, req.Password)

	creds := domain.Credentials{Email: req.Email, Password: req.Password}
	st, sid, err := h.submit(c, st, &req, func(ctx context.Context) (domain.SubmitResult, error) {
		return h.backend.Authenticate(ctx, creds)
	})
	if err != nil {
		return h.loginFailure(c, st, err)
	}

	result, _ := st.Result()
	if !result.OK() {
		h.publishFailure(c, sid, formLogin, result)
		return h.renderLogin(c, formStatus(c, resultStatus(result)), st)
	}

	if err := session.SetAuthenticated(c); err != nil {
		return fmt.Errorf("mark session authenticated: %w", err)
	}
	h.publish(c, func(ctx context.Context) error {
		return pubsub.Publish(ctx, h.publisher, activity.TopicLoginSucceeded, sid, activity.LoginSucceeded{
			Email: req.Email,
			At:    now(),
		})
	})
	middleware.FromContext(c.Request().Context()).Info("Login succeeded", "redirect", result.Redirect)
	return navigate(c, result.Redirect)
}

// SignupGet renders the signup page (GET /signup). ?variant= picks the page flavour.
func (h *AuthHandler) SignupGet(c echo.Context) error {
	h.ensureSession(c)

	data := auth.SignupData{
		Form:    newSignupForm(),
		CSRF:    csrfData(c),
		Variant: auth.LookupSignupVariant(c.QueryParam("variant")),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Sign Up", view.GetFlashData(c), pages.Signup(data)))
}

// SignupPost handles the signup form submission (POST /signup).
func (h *AuthHandler) SignupPost(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission").SetInternal(err)
	}
	variant := auth.LookupSignupVariant(req.Variant)

	st := newSignupForm().
		Update(form.FieldName, req.Name).
		Update(form.FieldEmail, req.Email).
		Update(form.FieldPassword, req.Password)

	registration := domain.Registration{Name: req.Name, Email: req.Email, Password: req.Password}
	st, sid, err := h.submit(c, st, &req, func(ctx context.Context) (domain.SubmitResult, error) {
		return h.backend.Register(ctx, registration)
	})
	if err != nil {
		return h.signupFailure(c, st, variant, err)
	}

	result, _ := st.Result()
	if !result.OK() {
		h.publishFailure(c, sid, formSignup, result)
		return h.renderSignup(c, formStatus(c, resultStatus(result)), st, variant)
	}

	if err := session.SetAuthenticated(c); err != nil {
		return fmt.Errorf("mark session authenticated: %w", err)
	}
	h.publish(c, func(ctx context.Context) error {
		return pubsub.Publish(ctx, h.publisher, activity.TopicAccountRegistered, sid, activity.AccountRegistered{
			Name:  req.Name,
			Email: req.Email,
			At:    now(),
		})
	})
	middleware.FromContext(c.Request().Context()).Info("Account registered", "variant", variant.Name)
	return navigate(c, result.Redirect)
}

// Logout clears the session and returns to the login page (GET /logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Clear(c); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, navigation.PathLogin)
}

// submit runs the pipeline shared by both forms: validate, enter the loading state,
// claim the session's submission slot, call the backend and leave the loading state.
// The returned error is domain.ErrValidation or domain.ErrSubmissionInFlight for
// problems shown on the form; anything else is unexpected.
func (h *AuthHandler) submit(
	c echo.Context,
	st form.State,
	req any,
	call func(ctx context.Context) (domain.SubmitResult, error),
) (form.State, string, error) {
	if err := c.Validate(req); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			return st, "", fmt.Errorf("validate request: %w", err)
		}
		st = st.WithFieldErrors(errs)
	}

	st, err := st.Begin()
	if err != nil {
		return st, "", err
	}

	sid, err := session.EnsureID(c)
	if err != nil {
		return st, "", err
	}

	release, err := h.guard.Acquire(sid)
	if err != nil {
		return st.Finish(domain.Rejected(err)), sid, err
	}
	defer release()

	result, err := call(c.Request().Context())
	if err != nil {
		return st.Finish(domain.Failed(err)), sid, err
	}
	return st.Finish(result), sid, nil
}

func (h *AuthHandler) loginFailure(c echo.Context, st form.State, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return h.renderLogin(c, formStatus(c, http.StatusUnprocessableEntity), st)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return h.renderLogin(c, formStatus(c, http.StatusConflict), st)
	default:
		return abandoned(c, err)
	}
}

func (h *AuthHandler) signupFailure(c echo.Context, st form.State, variant auth.SignupVariant, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return h.renderSignup(c, formStatus(c, http.StatusUnprocessableEntity), st, variant)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return h.renderSignup(c, formStatus(c, http.StatusConflict), st, variant)
	default:
		return abandoned(c, err)
	}
}

// abandoned turns a submission that ended without an answer into an HTTP error.
func abandoned(c echo.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		middleware.FromContext(c.Request().Context()).Info("Submission abandoned", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "The submission was interrupted.").SetInternal(err)
	}
	return err
}

// renderLogin re-renders the login form. htmx requests only get the form fragment.
func (h *AuthHandler) renderLogin(c echo.Context, status int, st form.State) error {
	data := auth.LoginData{Form: st.WithoutSecrets(), CSRF: csrfData(c)}
	return h.renderForm(c, status, "Login", pages.LoginForm(data), pages.Login(data))
}

func (h *AuthHandler) renderSignup(c echo.Context, status int, st form.State, variant auth.SignupVariant) error {
	data := auth.SignupData{Form: st.WithoutSecrets(), CSRF: csrfData(c), Variant: variant}
	return h.renderForm(c, status, "Sign Up", pages.SignupForm(data), pages.Signup(data))
}

func (h *AuthHandler) renderForm(c echo.Context, status int, title string, fragment, page cmp.Node) error {
	if isHTMX(c) {
		return h.renderer.RenderPage(c, status, fragment)
	}
	return h.renderer.RenderPage(c, status, layouts.Base(title, view.GetFlashData(c), page))
}

// ensureSession makes sure the browser holds a session id before it can submit.
func (h *AuthHandler) ensureSession(c echo.Context) {
	if _, err := session.EnsureID(c); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Could not start session", "error", err)
	}
}

func (h *AuthHandler) publishFailure(c echo.Context, sid, formName string, result domain.SubmitResult) {
	reason := ""
	if result.Err != nil {
		reason = result.Err.Error()
	}
	middleware.FromContext(c.Request().Context()).Warn("Submission did not succeed",
		"form", formName,
		"outcome", result.Outcome.String(),
		"error", result.Err,
	)
	h.publish(c, func(ctx context.Context) error {
		return pubsub.Publish(ctx, h.publisher, activity.TopicSubmissionFailed, sid, activity.SubmissionFailed{
			Form:    formName,
			Outcome: result.Outcome.String(),
			Reason:  reason,
			At:      now(),
		})
	})
}

// publish sends an event. A bus failure is logged and never fails the request.
func (h *AuthHandler) publish(c echo.Context, send func(ctx context.Context) error) {
	if h.publisher == nil {
		return
	}
	ctx := c.Request().Context()
	if err := send(ctx); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish event", "error", err)
	}
}

// resultStatus is the status of a form re-rendered after an unsuccessful submission.
func resultStatus(r domain.SubmitResult) int {
	if r.Outcome == domain.OutcomeRejected {
		return http.StatusUnprocessableEntity
	}
	return http.StatusServiceUnavailable
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
