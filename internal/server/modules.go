package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/ecoshare/internal/module"
	"github.com/nfrund/ecoshare/internal/registry"
)

// InitModules registers and boots every module. Modules mount their own routes under /app.
func (s *Server) InitModules(ctx context.Context, modules []module.Module, reg *registry.Registry) error {
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	group := s.E.Group("/app")
	for _, m := range modules {
		if err := m.Boot(ctx, group, reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}

// shutdownModules stops the booted modules in reverse order.
func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
	s.modules = nil
}
