package categories

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

// Router mounts the category endpoints. All routes require a session.
func Router(svc *Service, sessions *session.Manager, selector *failover.Selector) http.Handler {
	h := &handlers{svc: svc, selector: selector}

	r := chi.NewRouter()
	r.Use(session.Middleware(sessions))
	r.Use(session.RequireAuth)

	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Put("/{id}", h.rename)
	r.Delete("/{id}", h.remove)

	return r
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	categories, err := h.svc.List(r.Context(), sess.UserID)
	if err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to load categories. Please check your connection.")
		return
	}

	httpx.Success(w, map[string]any{
		"categories":   categories,
		"fallbackMode": h.selector.UseFallback(r.Context()),
	})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *handlers) add(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.svc.Add(r.Context(), sess.UserID, req.Name)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to add category. Please check your connection.")
		return
	}

	httpx.Success(w, map[string]any{"category": category})
}

func (h *handlers) rename(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.svc.Rename(r.Context(), id, sess.UserID, req.Name)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
		case errors.Is(err, ErrCategoryNotFound):
			httpx.Fail(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, ErrAlreadyExists):
			httpx.Fail(w, http.StatusBadRequest, "A category with that name already exists")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to rename category. Please check your connection.")
		}
		return
	}

	httpx.Success(w, nil)
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, sess.UserID); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to delete category. Please check your connection.")
		return
	}

	httpx.Success(w, nil)
}
