package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// TTL is the session lifetime; the cookie max-age matches it.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// SecureCookies enables the Secure flag on session cookies. Off by
	// default so local development over plain HTTP keeps working.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// CleanupInterval for expired fallback sessions (0 to disable).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns default session configuration: a 7-day session under
// the "session_id" cookie.
func DefaultConfig() Config {
	return Config{
		CookieName:      "session_id",
		TTL:             7 * 24 * time.Hour,
		SecureCookies:   false,
		CleanupInterval: 5 * time.Minute,
	}
}
