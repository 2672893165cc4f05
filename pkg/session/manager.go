package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/cookie"
)

// Manager handles the session lifecycle: absent -> active -> expired/deleted.
// Every public method catches internal failures at its own boundary; callers
// see either a session, ErrNotAuthenticated, or a failure sentinel — never a
// store or cookie internal error.
type Manager struct {
	store   Store
	cookies *cookie.Manager
	config  Config
	log     *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the logger for internal failures that are absorbed at the
// manager boundary.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// NewManager creates a session manager over the given store and cookie
// manager. The store is typically a FailoverStore.
func NewManager(store Store, cookies *cookie.Manager, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		cookies: cookies,
		config:  DefaultConfig(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create issues a new session for the user and sets the session cookie.
// The active store removes the user's prior sessions as part of Create. If
// the cookie cannot be written the stored session is removed again so no
// orphaned record is left behind.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) (*Session, error) {
	if userID == uuid.Nil {
		return nil, ErrCreateFailed
	}

	session := New(userID, m.config.TTL)

	if err := m.store.Create(ctx, session); err != nil {
		m.log.ErrorContext(ctx, "failed to store session", "user_id", userID.String(), "error", err)
		return nil, ErrCreateFailed
	}

	if err := m.setCookie(w, session); err != nil {
		_ = m.store.Delete(ctx, session.ID)
		m.log.ErrorContext(ctx, "failed to set session cookie", "user_id", userID.String(), "error", err)
		return nil, ErrCreateFailed
	}

	return session, nil
}

// Get resolves the request's session. A missing or malformed cookie returns
// ErrNotAuthenticated without touching the store. Expiry is enforced lazily:
// a session found expired is deleted here, at read time, and reported as not
// authenticated.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	raw, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	id, err := ParseID(raw)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	session, err := m.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			m.log.ErrorContext(ctx, "session lookup failed", "error", err)
		}
		return nil, ErrNotAuthenticated
	}

	if session.IsExpired() {
		if err := m.store.Delete(ctx, id); err != nil {
			m.log.ErrorContext(ctx, "failed to delete expired session", "error", err)
		}
		return nil, ErrNotAuthenticated
	}

	return session, nil
}

// Destroy removes the request's session record, if any, and always clears
// the session cookie. Destroying an absent session succeeds.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	raw, err := m.cookies.Get(r, m.config.CookieName)
	if err == nil {
		if id, err := ParseID(raw); err == nil {
			if err := m.store.Delete(ctx, id); err != nil {
				m.log.ErrorContext(ctx, "failed to delete session", "error", err)
			}
		}
	}

	m.cookies.Delete(w, m.config.CookieName)
	return nil
}

func (m *Manager) setCookie(w http.ResponseWriter, session *Session) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(m.config.TTL.Seconds())),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}
	if m.config.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	return m.cookies.Set(w, m.config.CookieName, session.ID.String(), opts...)
}
