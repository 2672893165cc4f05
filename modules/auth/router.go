package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotekeeper/quotekeeper/pkg/consent"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/httpx"
	"github.com/quotekeeper/quotekeeper/pkg/session"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

type handlers struct {
	svc      *Service
	sessions *session.Manager
	gate     *consent.Gate
	selector *failover.Selector
}

// Router mounts the account endpoints. The selector feeds the fallbackMode
// indicator attached to responses while the durable store is unreachable.
func Router(svc *Service, sessions *session.Manager, gate *consent.Gate, selector *failover.Selector) http.Handler {
	h := &handlers{svc: svc, sessions: sessions, gate: gate, selector: selector}

	r := chi.NewRouter()
	r.Post("/sign-up", h.signUp)
	r.Post("/sign-in", h.signIn)
	r.Post("/sign-out", h.signOut)
	r.Post("/forgot-password", h.forgotPassword)
	r.Post("/reset-password", h.resetPassword)

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(sessions))
		r.With(session.RequireAuth).Get("/me", h.currentUser)
	})

	return r
}

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *handlers) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.SignUp(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
		case errors.Is(err, ErrEmailAlreadyExists):
			httpx.Fail(w, http.StatusBadRequest, "Email already in use")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to create account. Please try again.")
		}
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, user.ID); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Account created but sign-in failed. Please sign in.")
		return
	}

	httpx.Success(w, map[string]any{
		"user":               user.Public(),
		"needsCookieConsent": !h.gate.Load(r).ConsentGiven,
		"fallbackMode":       h.selector.UseFallback(r.Context()),
	})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.Fail(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to sign in. Please check your connection.")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, user.ID); err != nil {
		httpx.Fail(w, http.StatusInternalServerError, "Failed to sign in. Please try again.")
		return
	}

	httpx.Success(w, map[string]any{
		"user":               user.Public(),
		"needsCookieConsent": !h.gate.Load(r).ConsentGiven,
		"fallbackMode":       h.selector.UseFallback(r.Context()),
	})
}

func (h *handlers) signOut(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.Destroy(r.Context(), w, r)
	httpx.Success(w, nil)
}

func (h *handlers) currentUser(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	user, err := h.svc.CurrentUser(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.Fail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		httpx.Fail(w, http.StatusInternalServerError, "Failed to load account. Please check your connection.")
		return
	}

	httpx.Success(w, map[string]any{
		"user":         user.Public(),
		"fallbackMode": h.selector.UseFallback(r.Context()),
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *handlers) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Always reports success so responses cannot confirm whether an email
	// is registered.
	_ = h.svc.RequestPasswordReset(r.Context(), req.Email)
	httpx.Success(w, nil)
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *handlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.svc.ResetPassword(r.Context(), req.Token, req.Password, req.ConfirmPassword)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httpx.Fail(w, http.StatusBadRequest, verrs.First())
		case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
			httpx.Fail(w, http.StatusBadRequest, "Invalid or expired reset link. Please request a new one.")
		case errors.Is(err, ErrUserNotFound):
			httpx.Fail(w, http.StatusBadRequest, "Invalid or expired reset link. Please request a new one.")
		default:
			httpx.Fail(w, http.StatusInternalServerError, "Failed to reset password. Please try again.")
		}
		return
	}

	httpx.Success(w, nil)
}
