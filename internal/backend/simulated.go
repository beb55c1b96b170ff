package backend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/ecoshare/internal/domain"
)

// Mode selects what the simulated backend answers.
type Mode string

const (
	ModeSuccess Mode = "success"
	ModeReject  Mode = "reject"
	ModeFail    Mode = "fail"
)

// DefaultDelay is the latency of one simulated round trip.
const DefaultDelay = time.Second

// Simulated waits for a fixed delay and then answers according to its mode.
// It never performs I/O.
type Simulated struct {
	delay    time.Duration
	mode     Mode
	redirect string
	after    func(time.Duration) <-chan time.Time
}

// Option configures a Simulated backend.
type Option func(*Simulated)

// WithMode forces the answer of every call.
func WithMode(m Mode) Option {
	return func(s *Simulated) { s.mode = m }
}

// WithRedirect changes where successful submissions navigate to.
func WithRedirect(path string) Option {
	return func(s *Simulated) { s.redirect = path }
}

// WithClock replaces time.After, mostly for tests.
func WithClock(after func(time.Duration) <-chan time.Time) Option {
	return func(s *Simulated) { s.after = after }
}

// NewSimulated creates a simulated backend with the given delay.
func NewSimulated(delay time.Duration, opts ...Option) *Simulated {
	s := &Simulated{
		delay:    delay,
		mode:     ModeSuccess,
		redirect: "/dashboard",
		after:    time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate simulates a sign-in round trip.
func (s *Simulated) Authenticate(ctx context.Context, creds domain.Credentials) (domain.SubmitResult, error) {
	if err := s.wait(ctx); err != nil {
		return domain.SubmitResult{}, err
	}
	slog.DebugContext(ctx, "simulated authentication finished", "email", creds.Email, "mode", s.mode)
	return s.answer(domain.ErrInvalidCredentials), nil
}

// Register simulates an account creation round trip.
func (s *Simulated) Register(ctx context.Context, reg domain.Registration) (domain.SubmitResult, error) {
	if err := s.wait(ctx); err != nil {
		return domain.SubmitResult{}, err
	}
	slog.DebugContext(ctx, "simulated registration finished", "email", reg.Email, "mode", s.mode)
	return s.answer(domain.ErrAccountExists), nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated backend: %w", ctx.Err())
	case <-s.after(s.delay):
		return nil
	}
}

func (s *Simulated) answer(rejection error) domain.SubmitResult {
	switch s.mode {
	case ModeReject:
		return domain.Rejected(rejection)
	case ModeFail:
		return domain.Failed(domain.ErrBackendUnavailable)
	default:
		return domain.Succeeded(s.redirect)
	}
}
