package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/ecoshare/internal/app"
	"github.com/nfrund/ecoshare/internal/backend"
	"github.com/nfrund/ecoshare/internal/config"
	"github.com/nfrund/ecoshare/internal/logging"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/registry"
	"github.com/nfrund/ecoshare/internal/rendering"
	"github.com/nfrund/ecoshare/internal/server"
)

func main() {
	cfg := config.New()
	logger := logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	reg := registry.New(cfg)

	// Core services shared by the server and the modules.
	bus := pubsub.NewWatermillBridge()
	renderer := rendering.NewUniversalRenderer()
	authn := backend.NewSimulated(cfg.GetSubmitDelay(), backend.WithMode(backend.Mode(cfg.GetSimulatedOutcome())))

	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bus))

	s, err := server.New(server.Dependencies{
		Config:        cfg,
		Authenticator: authn,
		Renderer:      renderer,
		Publisher:     bus,
	})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	modules := app.NewModules(app.Dependencies{Logger: logger})
	if err := s.InitModules(context.Background(), modules, reg); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()

	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
