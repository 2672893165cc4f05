package failover

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultWindow is how long a probe result stays authoritative.
	DefaultWindow = 5 * time.Second
	// DefaultProbeTimeout bounds a single connectivity probe. The selector
	// exists to detect outages quickly; a hanging probe would defeat it.
	DefaultProbeTimeout = 2 * time.Second
)

// Prober checks durable-store connectivity. A nil error means reachable.
// pg.Healthcheck and redis.Healthcheck return compatible closures.
type Prober func(ctx context.Context) error

// Option configures a Selector.
type Option func(*Selector)

// WithWindow sets the freshness window of the cached decision.
func WithWindow(d time.Duration) Option {
	return func(s *Selector) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithProbeTimeout sets the per-probe timeout.
func WithProbeTimeout(d time.Duration) Option {
	return func(s *Selector) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Selector decides whether operations should go to the durable store or the
// in-memory fallback. The decision is cached for a freshness window so a
// burst of calls during an outage costs a single probe. Each Selector is an
// independent instance; nothing here is process-global.
type Selector struct {
	probe   Prober
	window  time.Duration
	timeout time.Duration

	mu          sync.Mutex
	checkedAt   time.Time
	useFallback bool
}

// NewSelector creates a Selector around the given probe. A nil probe means
// the durable store is not configured at all, and every decision is
// "use fallback".
func NewSelector(probe Prober, opts ...Option) *Selector {
	s := &Selector{
		probe:   probe,
		window:  DefaultWindow,
		timeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UseFallback reports whether the in-memory fallback should serve the
// current call. Within the freshness window the cached decision is returned
// even if real reachability has changed in between; staleness is bounded by
// the window. Probe failures of any kind, including timeouts and panics, are
// absorbed and treated as "unreachable" — they never propagate to callers.
func (s *Selector) UseFallback(ctx context.Context) bool {
	if s.probe == nil {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.checkedAt.IsZero() && time.Since(s.checkedAt) < s.window {
		return s.useFallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.useFallback = s.runProbe(ctx) != nil
	s.checkedAt = time.Now()

	return s.useFallback
}

// Invalidate drops the cached decision so the next call probes again.
// Useful after an operator-triggered recovery instead of waiting out the window.
func (s *Selector) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkedAt = time.Time{}
}

func (s *Selector) runProbe(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("failover: probe panic: %v", r)
			}
		}()
		done <- s.probe(ctx)
	}()

	// The probe is raced against its own timeout so a store client that
	// ignores context cancellation still cannot stall the selector.
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
