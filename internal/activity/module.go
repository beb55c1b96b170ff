package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/ecoshare/internal/module"
	"github.com/nfrund/ecoshare/internal/pubsub"
	"github.com/nfrund/ecoshare/internal/registry"
)

// RecorderKey exposes the module's recorder to other modules.
const RecorderKey registry.Key[*Recorder] = "activity.recorder"

// Dependencies holds the services required by the activity module. When Subscriber is
// nil the module uses the one published under registry.SubscriberKey.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger
}

// Module listens to the auth events and keeps a running tally of them.
type Module struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	recorder   *Recorder
	cancel     context.CancelFunc
}

func New(deps Dependencies) *Module {
	return &Module{
		subscriber: deps.Subscriber,
		recorder:   NewRecorder(deps.Logger),
	}
}

func (m *Module) Name() string {
	return "activity"
}

// Recorder returns the module's recorder.
func (m *Module) Recorder() *Recorder {
	return m.recorder
}

func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, RecorderKey, m.recorder)
	slog.Info("Activity module registered")
	return nil
}

// Boot subscribes the recorder to every auth topic. The subscriptions live until Shutdown.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.subscriber == nil {
		sub, ok := registry.Get(reg, registry.SubscriberKey)
		if !ok {
			return errors.New("activity: no subscriber available")
		}
		m.subscriber = sub
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel

	subscriptions := []struct {
		topic   string
		handler pubsub.Handler
	}{
		{TopicLoginSucceeded.Name(), m.recorder.handleLogin},
		{TopicAccountRegistered.Name(), m.recorder.handleRegistration},
		{TopicSubmissionFailed.Name(), m.recorder.handleFailure},
	}

	for _, s := range subscriptions {
		if err := m.subscriber.Subscribe(subCtx, s.topic, s.handler); err != nil {
			cancel()
			return fmt.Errorf("subscribe to %s: %w", s.topic, err)
		}
	}

	slog.Info("Activity module booted", "topics", len(subscriptions))
	return nil
}

// Shutdown stops the subscriptions and logs the totals seen since boot.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	snap := m.recorder.Snapshot()
	m.recorder.logger.Info("Activity module shut down",
		"logins", snap.Logins,
		"registrations", snap.Registrations,
		"failures", snap.Failures,
		"last_failure", snap.LastFailure,
	)
	return nil
}
