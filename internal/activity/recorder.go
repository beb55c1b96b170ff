package activity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nfrund/ecoshare/internal/pubsub"
)

// Snapshot is a point-in-time copy of the recorder counters.
type Snapshot struct {
	Logins        int
	Registrations int
	Failures      int
	// LastFailure is the reason of the most recent failed submission.
	LastFailure string
}

// Recorder counts the auth events seen on the bus and logs each of them.
type Recorder struct {
	mu     sync.Mutex
	snap   Snapshot
	logger *slog.Logger
}

func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{logger: logger}
}

// Snapshot returns the current counters.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

func (r *Recorder) handleLogin(ctx context.Context, msg pubsub.Message) error {
	event, err := TopicLoginSucceeded.Decode(msg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snap.Logins++
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Login succeeded", "email", event.Email, "session_id", msg.SessionID)
	return nil
}

func (r *Recorder) handleRegistration(ctx context.Context, msg pubsub.Message) error {
	event, err := TopicAccountRegistered.Decode(msg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snap.Registrations++
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Account registered", "name", event.Name, "email", event.Email, "session_id", msg.SessionID)
	return nil
}

func (r *Recorder) handleFailure(ctx context.Context, msg pubsub.Message) error {
	event, err := TopicSubmissionFailed.Decode(msg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snap.Failures++
	r.snap.LastFailure = event.Reason
	r.mu.Unlock()

	r.logger.WarnContext(ctx, "Submission failed",
		"form", event.Form,
		"outcome", event.Outcome,
		"reason", event.Reason,
		"session_id", msg.SessionID,
	)
	return nil
}
