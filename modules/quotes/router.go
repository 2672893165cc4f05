package quotes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/httpx"
	"github.com/quotekeeper/quotekeeper/pkg/session"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

type handlers struct {
	svc      *Service
	selector *failover.Selector
}

// Router mounts the quote endpoints. All routes require a session.
func Router(svc *Service, sessions *session.Manager, selector *failover.Selector) http.Handler {
	h := &handlers{svc: svc, selector: selector}

	r := chi.NewRouter()
	r.Use(session.Middleware(sessions))
	r.Use(session.RequireAuth)

	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
	r.Post("/suggest-category", h.suggestCategory)

	return r
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	quotes, err := h.svc.List(r.Context(), sess.UserID)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to load quotes. Please check your connection.")
		return
	}

	httpx.Success(w, map[string]any{
		"quotes":       quotes,
		"fallbackMode": h.selector.UseFallback(r.Context()),
	})
}

type quoteRequest struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func (h *handlers) add(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req quoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, err := h.svc.Add(r.Context(), sess.UserID, req.Text, req.Author, req.Category)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to add quote. Please check your connection.")
		return
	}

	httpx.Success(w, map[string]any{
		"quote":        quote,
		"fallbackMode": h.selector.UseFallback(r.Context()),
	})
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid quote id")
		return
	}

	var req quoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.svc.Update(r.Context(), id, sess.UserID, req.Text, req.Author, req.Category)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
		case errors.Is(err, ErrQuoteNotFound):
			httpx.Fail(w, http.StatusNotFound, "Quote not found")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to update quote. Please check your connection.")
		}
		return
	}

	httpx.Success(w, nil)
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid quote id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, sess.UserID); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to delete quote. Please check your connection.")
		return
	}

	httpx.Success(w, nil)
}

type suggestRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (h *handlers) suggestCategory(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	httpx.Success(w, map[string]any{
		"category":  SuggestCategory(req.Text, req.Author),
		"confident": ShouldAutoCategorize(req.Text, req.Author),
	})
}
