package server

import (
	"log/slog"

	"github.com/nfrund/ecoshare/internal/handlers"
	"github.com/nfrund/ecoshare/internal/middleware"
	"github.com/nfrund/ecoshare/internal/navigation"
)

// RegisterRoutes sets up all the application routes from the navigation table.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	for _, r := range s.Navigation {
		if r.IsRedirect() {
			s.E.GET(r.Path, handlers.Redirect(r.RedirectTo))
			continue
		}

		switch r.Screen {
		case navigation.ScreenLogin:
			s.E.GET(r.Path, s.authHandler.LoginGet)
			s.E.POST(r.Path, s.authHandler.LoginPost, rateLimiter)
		case navigation.ScreenSignup:
			s.E.GET(r.Path, s.authHandler.SignupGet)
			s.E.POST(r.Path, s.authHandler.SignupPost, rateLimiter)
		case navigation.ScreenDashboard:
			guard := middleware.RequireAuth(r.Protected && s.Cfg.GetRequireAuth(), navigation.PathLogin)
			g := s.E.Group(r.Path, guard)
			g.GET("", s.dashboardHandler.DashboardGet)
			g.POST("/hover/:id", s.dashboardHandler.TileEnter)
			g.DELETE("/hover", s.dashboardHandler.TileLeave)
		default:
			slog.Error("No handler for screen", "screen", r.Screen, "path", r.Path)
		}
	}

	s.E.GET(navigation.PathLogout, s.authHandler.Logout)

	s.E.GET("/health", handlers.Health)
}
