package consent

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/quotekeeper/quotekeeper/pkg/cookie"
)

const (
	prefCookiePrefix     = "pref_"
	lastViewedCookie     = "last_viewed_quotes"
	lastViewedLimit      = 5
	prefCookieTTLSeconds = 365 * 24 * 60 * 60
)

// Functional stores user convenience state — preferences and the recently
// viewed quote list — gated behind functional consent. Without consent every
// save reports false and every read returns the zero value.
type Functional struct {
	gate *Gate
}

// NewFunctional creates a consent-gated functional preferences service.
func NewFunctional(gate *Gate) *Functional {
	return &Functional{gate: gate}
}

// SavePreference stores a single preference for a year.
func (f *Functional) SavePreference(w http.ResponseWriter, r *http.Request, key, value string) bool {
	return f.gate.SetCookie(w, r, prefCookiePrefix+key, url.QueryEscape(value), CategoryFunctional,
		cookie.WithMaxAge(prefCookieTTLSeconds),
	)
}

// Preference reads a stored preference. Consent is re-checked at read time:
// a withdrawn consent makes previously stored preferences unreadable.
func (f *Functional) Preference(r *http.Request, key string) string {
	if !f.gate.IsAllowed(r, CategoryFunctional) {
		return ""
	}

	raw, err := f.gate.GetCookie(r, prefCookiePrefix+key)
	if err != nil {
		return ""
	}
	value, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return value
}

// SaveLastViewed stores the most recently viewed quote identifiers,
// truncated to the newest five.
func (f *Functional) SaveLastViewed(w http.ResponseWriter, r *http.Request, quoteIDs []string) bool {
	if !f.gate.IsAllowed(r, CategoryFunctional) {
		return false
	}

	if len(quoteIDs) > lastViewedLimit {
		quoteIDs = quoteIDs[:lastViewedLimit]
	}

	data, err := json.Marshal(quoteIDs)
	if err != nil {
		return false
	}

	return f.gate.SetCookie(w, r, lastViewedCookie, url.QueryEscape(string(data)), CategoryFunctional)
}

// LastViewed returns the stored recently viewed quote identifiers.
func (f *Functional) LastViewed(r *http.Request) []string {
	if !f.gate.IsAllowed(r, CategoryFunctional) {
		return nil
	}

	raw, err := f.gate.GetCookie(r, lastViewedCookie)
	if err != nil {
		return nil
	}

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(decoded), &ids); err != nil {
		return nil
	}
	return ids
}
