package consent

import (
	"net/http"
	"time"

	"github.com/quotekeeper/quotekeeper/pkg/cookie"
)

const (
	// CookieName is the fixed name of the client-held consent record.
	CookieName = "cookie_consent"

	// recordTTL keeps the consent decision for a year.
	recordTTL = 365 * 24 * time.Hour

	// DefaultCookieTTL applies to consent-gated cookies that do not
	// specify their own expiry.
	DefaultCookieTTL = 30 * 24 * time.Hour
)

// Gate is the single choke point for consent-gated client persistence.
// Feature code never checks consent itself: every write goes through
// SetCookie, which refuses non-consented categories, so callers cannot
// forget the check.
type Gate struct {
	cookies *cookie.Manager
	now     func() time.Time
}

// NewGate creates a consent gate over the cookie manager.
func NewGate(cookies *cookie.Manager) *Gate {
	return &Gate{
		cookies: cookies,
		now:     time.Now,
	}
}

// Load reads the request's consent record. A missing or unreadable record
// yields the defaults: no consent given, nothing but necessary allowed.
func (g *Gate) Load(r *http.Request) Settings {
	var s Settings
	if err := g.cookies.GetJSON(r, CookieName, &s); err != nil {
		return DefaultSettings()
	}
	// Necessary is immutable regardless of what the client sent back.
	s.Necessary = true
	return s
}

// Save stores the consent record. The record itself is strictly necessary,
// so it is never gated. It is readable by client scripts on purpose.
func (g *Gate) Save(w http.ResponseWriter, s Settings) (Settings, error) {
	s = s.normalized(g.now())
	err := g.cookies.SetJSON(w, CookieName, s,
		cookie.WithMaxAge(int(recordTTL.Seconds())),
		cookie.WithHTTPOnly(false),
	)
	return s, err
}

// AcceptAll records consent for every category.
func (g *Gate) AcceptAll(w http.ResponseWriter) (Settings, error) {
	return g.Save(w, Settings{
		Necessary:    true,
		Functional:   true,
		Analytics:    true,
		Marketing:    true,
		ConsentGiven: true,
	})
}

// AcceptNecessaryOnly records an explicit choice of just the essentials.
func (g *Gate) AcceptNecessaryOnly(w http.ResponseWriter) (Settings, error) {
	return g.Save(w, Settings{
		Necessary:    true,
		ConsentGiven: true,
	})
}

// IsAllowed reports whether the request's recorded consent permits the
// category.
func (g *Gate) IsAllowed(r *http.Request, category Category) bool {
	return g.Load(r).Allows(category)
}

// SetCookie writes a cookie only if the request's consent allows the
// category. It reports whether the write happened. Cookies default to a
// 30-day expiry unless the options say otherwise.
func (g *Gate) SetCookie(w http.ResponseWriter, r *http.Request, name, value string, category Category, opts ...cookie.Option) bool {
	if !g.IsAllowed(r, category) {
		return false
	}

	withDefaults := append([]cookie.Option{
		cookie.WithMaxAge(int(DefaultCookieTTL.Seconds())),
	}, opts...)

	return g.cookies.Set(w, name, value, withDefaults...) == nil
}

// GetCookie reads a cookie previously written through the gate.
func (g *Gate) GetCookie(r *http.Request, name string) (string, error) {
	return g.cookies.Get(r, name)
}

// DeleteCookie removes a cookie. Deletion needs no consent: removing data
// is always permitted.
func (g *Gate) DeleteCookie(w http.ResponseWriter, name string) {
	g.cookies.Delete(w, name)
}
