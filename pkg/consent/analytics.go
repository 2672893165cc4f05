package consent

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	analyticsIDCookie = "analytics_browser_id"

	// maxBufferedEvents bounds the in-memory event buffer; the oldest
	// events are dropped first.
	maxBufferedEvents = 1000
)

// Event is a single tracked interaction.
type Event struct {
	Name       string            `json:"name"`
	BrowserID  string            `json:"browser_id"`
	Properties map[string]string `json:"properties,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Analytics records usage events, but only for browsers whose consent
// includes the analytics category. Without consent every method silently
// no-ops; callers never branch on consent state themselves.
type Analytics struct {
	gate *Gate
	log  *slog.Logger

	mu     sync.Mutex
	events []Event
}

// NewAnalytics creates a consent-gated analytics recorder.
func NewAnalytics(gate *Gate, log *slog.Logger) *Analytics {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analytics{gate: gate, log: log}
}

// Track records an event. It lazily establishes the per-browser identifier
// on first use — and only with analytics consent; no identifier is ever
// persisted for a non-consenting browser. Reports whether the event was
// recorded.
func (a *Analytics) Track(w http.ResponseWriter, r *http.Request, name string, properties map[string]string) bool {
	if !a.gate.IsAllowed(r, CategoryAnalytics) {
		return false
	}

	event := Event{
		Name:       name,
		BrowserID:  a.ensureBrowserID(w, r),
		Properties: properties,
		Timestamp:  time.Now(),
	}

	a.mu.Lock()
	if len(a.events) >= maxBufferedEvents {
		a.events = a.events[1:]
	}
	a.events = append(a.events, event)
	a.mu.Unlock()

	a.log.DebugContext(r.Context(), "analytics event",
		slog.String("event", event.Name),
		slog.String("browser_id", event.BrowserID),
	)
	return true
}

// TrackPageView records a page view for the request path.
func (a *Analytics) TrackPageView(w http.ResponseWriter, r *http.Request) bool {
	return a.Track(w, r, "page_view", map[string]string{
		"url":      r.URL.Path,
		"referrer": r.Referer(),
	})
}

// Events returns a snapshot of the buffered events.
func (a *Analytics) Events() []Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Event(nil), a.events...)
}

func (a *Analytics) ensureBrowserID(w http.ResponseWriter, r *http.Request) string {
	if id, err := a.gate.GetCookie(r, analyticsIDCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	a.gate.SetCookie(w, r, analyticsIDCookie, id, CategoryAnalytics)
	return id
}
