package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/backend"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/handlers"
	"github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/rendering"
	appsession "github.com/nfrund/ecoshare/internal/session"
	"github.com/nfrund/ecoshare/internal/submit"
	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// recordingPublisher keeps every published message in memory.
type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.Topic)
	}
	return out
}

// blockingAuthenticator holds every call until release is closed.
type blockingAuthenticator struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingAuthenticator() *blockingAuthenticator {
	return &blockingAuthenticator{entered: make(chan struct{}, 4), release: make(chan struct{})}
}

func (b *blockingAuthenticator) wait(ctx context.Context) (domain.SubmitResult, error) {
	b.entered <- struct{}{}
	select {
	case <-b.release:
		return domain.Succeeded("/dashboard"), nil
	case <-ctx.Done():
		return domain.SubmitResult{}, ctx.Err()
	}
}

func (b *blockingAuthenticator) Authenticate(ctx context.Context, _ domain.Credentials) (domain.SubmitResult, error) {
	return b.wait(ctx)
}

func (b *blockingAuthenticator) Register(ctx context.Context, _ domain.Registration) (domain.SubmitResult, error) {
	return b.wait(ctx)
}

type testEnv struct {
	e         *echo.Echo
	store     *sessions.CookieStore
	publisher *recordingPublisher
}

// setupTest wires the handlers on a bare echo instance without CSRF protection.
func setupTest(t *testing.T, authn backend.Authenticator, requireAuth bool) *testEnv {
	t.Helper()

	e := echo.New()
	e.Validator = handlers.NewValidator()
	store := appsession.NewStore(testSessionSecret, false)
	e.Use(session.Middleware(store))

	renderer := rendering.NewUniversalRenderer()
	publisher := &recordingPublisher{}

	authHandler := handlers.NewAuthHandler(authn, submit.NewGuard(), publisher, renderer)
	dashboardHandler := handlers.NewDashboardHandler(renderer)

	e.GET("/", handlers.Redirect("/login"))
	e.GET("/health", handlers.Health)
	e.GET("/login", authHandler.LoginGet)
	e.POST("/login", authHandler.LoginPost)
	e.GET("/signup", authHandler.SignupGet)
	e.POST("/signup", authHandler.SignupPost)
	e.GET("/logout", authHandler.Logout)

	dash := e.Group("/dashboard", middleware.RequireAuth(requireAuth, "/login"))
	dash.GET("", dashboardHandler.DashboardGet)
	dash.POST("/hover/:id", dashboardHandler.TileEnter)
	dash.DELETE("/hover", dashboardHandler.TileLeave)

	return &testEnv{e: e, store: store, publisher: publisher}
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// get performs a GET and returns the cookies the response set.
func (env *testEnv) get(path string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := env.do(req)
	return rec, rec.Result().Cookies()
}

func postForm(path string, values url.Values, cookies []*http.Cookie, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req
}

// sessionValues decodes the application session from the cookies of a response.
func (env *testEnv) sessionValues(t *testing.T, rec *httptest.ResponseRecorder) map[interface{}]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	sess, err := env.store.Get(req, appsession.Name)
	assert.NoError(t, err)
	return sess.Values
}

// assertFlashMessage is a test helper to check for a specific flash message in the session.
func (env *testEnv) assertFlashMessage(t *testing.T, rec *httptest.ResponseRecorder, key, expectedMessage string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	sess, _ := env.store.Get(req, "flash-session")

	flashes := sess.Flashes(key)
	if assert.NotEmpty(t, flashes, "expected flash message but found none for key: %s", key) {
		assert.Equal(t, expectedMessage, flashes[0])
	}
}
