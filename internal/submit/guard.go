// Package submit serialises form submissions per browser session.
package submit

import (
	"sync"

	"github.com/nfrund/ecoshare/internal/domain"
)

// Guard tracks which sessions have a submission in flight. A second submission for
// the same key is refused until the first one releases it.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire claims key. The returned release func must be called exactly once, usually
// deferred; calling it again is a no-op.
func (g *Guard) Acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return nil, domain.ErrSubmissionInFlight
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, nil
}

// InFlight returns the number of submissions currently running.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
