package cookie

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Manager writes and reads cookies with a set of default attributes.
// Per-call options override the defaults without mutating them.
type Manager struct {
	defaults Options
}

// New returns a Manager with HTTP-only, path=/, SameSite=Lax defaults.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{defaults: defaults}
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidValue, name, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the cookie immediately. Attributes must match the ones the
// cookie was set with, so the manager's defaults are reused.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetJSON stores a JSON-encoded value. The payload is percent-encoded since
// raw JSON is not a valid cookie value.
func (m *Manager) SetJSON(w http.ResponseWriter, name string, value any, opts ...Option) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cookie %q: %w", name, err)
	}
	return m.Set(w, name, url.QueryEscape(string(data)), opts...)
}

// GetJSON reads and decodes a cookie written by SetJSON.
func (m *Manager) GetJSON(r *http.Request, name string, dest any) error {
	raw, err := m.Get(r, name)
	if err != nil {
		return err
	}

	data, err := url.QueryUnescape(raw)
	if err != nil {
		return ErrInvalidFormat
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return ErrInvalidFormat
	}
	return nil
}
