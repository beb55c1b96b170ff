package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is canceled or an interrupt or terminate signal
// is received, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetServerAddr(), "base_url", s.Cfg.GetAppBaseURL())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, then stops the modules and closes the event bus.
// In-flight submissions see their request context canceled.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server", "submissions_in_flight", s.guard.InFlight())
	err := s.E.Shutdown(ctx)

	s.shutdownModules(ctx)

	if s.Publisher != nil {
		if cerr := s.Publisher.Close(); cerr != nil {
			slog.Error("Failed to close event bus", "error", cerr)
		}
	}
	return err
}
