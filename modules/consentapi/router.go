package consentapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotekeeper/quotekeeper/pkg/consent"
	"github.com/quotekeeper/quotekeeper/pkg/httpx"
)

type handlers struct {
	gate       *consent.Gate
	analytics  *consent.Analytics
	functional *consent.Functional
}

// Router mounts the cookie-consent endpoints. They need no session: consent
// belongs to the browser, not the account, and the banner must work before
// sign-in.
func Router(gate *consent.Gate, analytics *consent.Analytics, functional *consent.Functional) http.Handler {
	h := &handlers{gate: gate, analytics: analytics, functional: functional}

	r := chi.NewRouter()
	r.Get("/", h.get)
	r.Post("/", h.save)
	r.Post("/accept-all", h.acceptAll)
	r.Post("/necessary-only", h.necessaryOnly)

	r.Post("/events", h.trackEvent)
	r.Post("/preferences", h.savePreference)
	r.Get("/preferences/{key}", h.getPreference)
	r.Put("/last-viewed", h.saveLastViewed)
	r.Get("/last-viewed", h.lastViewed)

	return r
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	httpx.Success(w, map[string]any{
		"preferences":  h.gate.Load(r),
		"descriptions": consent.CategoryDescriptions,
	})
}

type saveRequest struct {
	Functional bool `json:"functional"`
	Analytics  bool `json:"analytics"`
	Marketing  bool `json:"marketing"`
}

func (h *handlers) save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.gate.Save(w, consent.Settings{
		Functional:   req.Functional,
		Analytics:    req.Analytics,
		Marketing:    req.Marketing,
		ConsentGiven: true,
	})
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to save cookie preferences")
		return
	}

	httpx.Success(w, map[string]any{"preferences": saved})
}

func (h *handlers) acceptAll(w http.ResponseWriter, r *http.Request) {
	saved, err := h.gate.AcceptAll(w)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to save cookie preferences")
		return
	}
	httpx.Success(w, map[string]any{"preferences": saved})
}

func (h *handlers) necessaryOnly(w http.ResponseWriter, r *http.Request) {
	saved, err := h.gate.AcceptNecessaryOnly(w)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to save cookie preferences")
		return
	}
	httpx.Success(w, map[string]any{"preferences": saved})
}

type eventRequest struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties"`
}

func (h *handlers) trackEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		httpx.Fail(w, http.StatusBadRequest, "Event name is required")
		return
	}

	// Without analytics consent this silently records nothing; the client
	// learns it was skipped but the request still succeeds.
	tracked := h.analytics.Track(w, r, req.Name, req.Properties)
	httpx.Success(w, map[string]any{"tracked": tracked})
}

type preferenceRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *handlers) savePreference(w http.ResponseWriter, r *http.Request) {
	var req preferenceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Key == "" {
		httpx.Fail(w, http.StatusBadRequest, "Preference key is required")
		return
	}

	saved := h.functional.SavePreference(w, r, req.Key, req.Value)
	httpx.Success(w, map[string]any{"saved": saved})
}

func (h *handlers) getPreference(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	httpx.Success(w, map[string]any{
		"key":   key,
		"value": h.functional.Preference(r, key),
	})
}

type lastViewedRequest struct {
	QuoteIDs []string `json:"quoteIds"`
}

func (h *handlers) saveLastViewed(w http.ResponseWriter, r *http.Request) {
	var req lastViewedRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved := h.functional.SaveLastViewed(w, r, req.QuoteIDs)
	httpx.Success(w, map[string]any{"saved": saved})
}

func (h *handlers) lastViewed(w http.ResponseWriter, r *http.Request) {
	httpx.Success(w, map[string]any{"quoteIds": h.functional.LastViewed(r)})
}
