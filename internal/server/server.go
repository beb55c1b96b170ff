package server

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/ecoshare/internal/backend"
	"github.com/nfrund/ecoshare/internal/config"
	"github.com/nfrund/ecoshare/internal/handlers"
	appmiddleware "github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/module"
	"github.com/nfrund/ecoshare/internal/navigation"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/rendering"
	appsession "github.com/nfrund/ecoshare/internal/session"
	"github.com/nfrund/ecoshare/internal/submit"
	"github.com/nfrund/ecoshare/web"
)

// Dependencies holds all the services that the Server requires to operate.
type Dependencies struct {
	Config        config.Provider
	Authenticator backend.Authenticator
	Renderer      rendering.Renderer
	// Publisher receives the auth events. Optional.
	Publisher pubsub.Publisher
	// Echo lets tests supply their own instance. Optional.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E          *echo.Echo
	Cfg        config.Provider
	Renderer   rendering.Renderer
	Publisher  pubsub.Publisher
	Navigation navigation.Table

	guard            *submit.Guard
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	modules          []module.Module
}

// New creates a new Server instance with its middleware stack. Routes are added by
// RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Authenticator == nil {
		return nil, errors.New("server: authenticator is required")
	}
	if deps.Renderer == nil {
		return nil, errors.New("server: renderer is required")
	}

	cfg := deps.Config
	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	nav := navigation.Default()
	setupErrorHandling(e, deps.Renderer, nav)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(session.Middleware(appsession.NewStore(cfg.GetSessionSecret(), cfg.GetSecureCookies())))
	if cfg.GetCSRFEnabled() {
		e.Use(appmiddleware.CSRF(cfg.GetSessionSecret(), cfg.GetSecureCookies()))
	} else {
		slog.Warn("CSRF protection is disabled")
	}

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	if !cfg.GetRequireAuth() {
		slog.Warn("Dashboard auth guard is disabled: /dashboard is reachable without logging in (set REQUIRE_AUTH=true to enable it)")
	}

	guard := submit.NewGuard()
	return &Server{
		E:                e,
		Cfg:              cfg,
		Renderer:         deps.Renderer,
		Publisher:        deps.Publisher,
		Navigation:       nav,
		guard:            guard,
		authHandler:      handlers.NewAuthHandler(deps.Authenticator, guard, deps.Publisher, deps.Renderer),
		dashboardHandler: handlers.NewDashboardHandler(deps.Renderer),
	}, nil
}
