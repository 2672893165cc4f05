package share

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/httpx"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

type handlers struct {
	svc *Service
}

// Router mounts the share endpoints. Creating a link requires a session;
// resolving one is public, that being the point of sharing.
func Router(svc *Service, sessions *session.Manager) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(sessions))
		r.With(session.RequireAuth).Post("/", h.create)
	})

	r.Get("/{token}", h.resolve)
	r.Get("/{token}/qr.png", h.qr)

	return r
}

type createRequest struct {
	QuoteID string `json:"quoteId"`
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quoteID, err := uuid.Parse(req.QuoteID)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid quote id")
		return
	}

	shareToken, shareURL, err := h.svc.CreateLink(r.Context(), sess.UserID, quoteID)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			httpx.Fail(w, http.StatusNotFound, "Quote not found")
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to create share link. Please try again.")
		return
	}

	httpx.Success(w, map[string]any{
		"token": shareToken,
		"url":   shareURL,
	})
}

func (h *handlers) resolve(w http.ResponseWriter, r *http.Request) {
	public, err := h.svc.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			httpx.Fail(w, http.StatusBadRequest, "Invalid share link")
		case errors.Is(err, ErrQuoteNotFound):
			httpx.Fail(w, http.StatusNotFound, "Quote not found")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to load quote. Please try again.")
		}
		return
	}

	httpx.Success(w, map[string]any{"quote": public})
}

func (h *handlers) qr(w http.ResponseWriter, r *http.Request) {
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}

	png, err := h.svc.QRCode(r.Context(), chi.URLParam(r, "token"), size)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			httpx.Fail(w, http.StatusBadRequest, "Invalid share link")
		case errors.Is(err, ErrQuoteNotFound):
			httpx.Fail(w, http.StatusNotFound, "Quote not found")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to render QR code. Please try again.")
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}
