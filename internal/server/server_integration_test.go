package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nfrund/ecoshare/internal/activity"
	"github.com/nfrund/ecoshare/internal/app"
	"github.com/nfrund/ecoshare/internal/backend"
	"github.com/nfrund/ecoshare/internal/config"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/registry"
	"github.com/nfrund/ecoshare/internal/rendering"
	"github.com/nfrund/ecoshare/internal/server"
	"github.com/nfrund/ecoshare/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfFieldPattern = regexp.MustCompile(`name="csrf" value="([^"]+)"`)

// setupIntegrationTest builds the full server the way cmd/server does, backed by an
// instant simulated backend, and serves it over a real listener.
func setupIntegrationTest(t *testing.T, requireAuth bool) (*httptest.Server, *http.Client, *registry.Registry) {
	t.Helper()

	cfg := testutils.ConfigForTests(t, map[string]string{
		"REQUIRE_AUTH": strconv.FormatBool(requireAuth),
	})
	reg := registry.New(cfg)

	bus := pubsub.NewWatermillBridge()
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bus))
	renderer := rendering.NewUniversalRenderer()

	s, err := server.New(server.Dependencies{
		Config:        cfg,
		Authenticator: backend.NewSimulated(cfg.GetSubmitDelay()),
		Renderer:      renderer,
		Publisher:     bus,
	})
	require.NoError(t, err)

	modules := app.NewModules(app.Dependencies{})
	require.NoError(t, s.InitModules(context.Background(), modules, reg))
	s.RegisterRoutes()

	ts := httptest.NewServer(s.E)
	t.Cleanup(func() {
		ts.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar, Timeout: 5 * time.Second}, reg
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestServer_LoginFlow(t *testing.T) {
	ts, client, reg := setupIntegrationTest(t, false)

	// The root redirects to the login screen.
	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Welcome Back")

	match := csrfFieldPattern.FindStringSubmatch(body)
	require.Len(t, match, 2, "the login form carries a CSRF token")

	// A post without the token is refused.
	resp, err = client.PostForm(ts.URL+"/login", url.Values{"email": {"a@b.com"}, "password": {"secret"}})
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A valid submission lands on the dashboard.
	resp, err = client.PostForm(ts.URL+"/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"secret"},
		"csrf":     {match[1]},
	})
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Request.URL.Path)
	assert.Contains(t, body, "EcoShare Dashboard")
	assert.Contains(t, body, `href="/logout"`)
	assert.Contains(t, body, "hx-headers=", "hover requests carry the CSRF token")

	recorder := registry.MustGet(reg, activity.RecorderKey)
	assert.Eventually(t, func() bool {
		return recorder.Snapshot().Logins == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Logging out drops the authenticated flag.
	resp, err = client.Get(ts.URL + "/logout")
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "You have been logged out.")
}

func TestServer_AuthGuard(t *testing.T) {
	ts, client, _ := setupIntegrationTest(t, true)

	resp, err := client.Get(ts.URL + "/dashboard")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Please log in to continue.")
}

func TestServer_Routes(t *testing.T) {
	ts, client, _ := setupIntegrationTest(t, false)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{path: "/health", status: http.StatusOK, contains: "OK"},
		{path: "/static/app.css", status: http.StatusOK, contains: ".tile-grid"},
		{path: "/signup?variant=classic", status: http.StatusOK, contains: "Sign Up"},
		{path: "/login/", status: http.StatusOK, contains: "Welcome Back"},
		{path: "/dashboard", status: http.StatusOK, contains: "Resource Exchange"},
		{path: "/events", status: http.StatusNotFound, contains: "coming soon"},
		{path: "/nowhere", status: http.StatusNotFound, contains: "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := client.Get(ts.URL + tt.path)
			require.NoError(t, err)
			body := readBody(t, resp)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.True(t, strings.Contains(body, tt.contains), "body of %s should contain %q", tt.path, tt.contains)
		})
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := server.New(server.Dependencies{})
	assert.Error(t, err)

	_, err = server.New(server.Dependencies{Config: &config.Config{}})
	assert.Error(t, err)
}
