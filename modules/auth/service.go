package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotekeeper/quotekeeper/pkg/email"
	"github.com/quotekeeper/quotekeeper/pkg/logger"
	"github.com/quotekeeper/quotekeeper/pkg/sanitizer"
	"github.com/quotekeeper/quotekeeper/pkg/token"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

// subjectPasswordReset tags reset tokens so they cannot be replayed as any
// other token type signed with the same secret.
const subjectPasswordReset = "password_reset"

type resetTokenPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Subject  string `json:"sub"`
	ExpireAt int64  `json:"exp"`
}

// Service implements account operations: sign-up, sign-in, and the password
// reset flow.
type Service struct {
	storage       Storage
	tokenSecret   string
	bcryptCost    int
	resetTokenTTL time.Duration
	mailer        email.Sender
	baseURL       string
	log           *slog.Logger

	afterSignUp func(ctx context.Context, user *User) error
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for absorbed internal failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBcryptCost overrides the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithResetTokenTTL overrides the reset token lifetime.
func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Service) { s.resetTokenTTL = ttl }
}

// WithMailer sets the sender used for password reset emails. Without one,
// reset requests still succeed but no email goes out.
func WithMailer(sender email.Sender) Option {
	return func(s *Service) { s.mailer = sender }
}

// WithBaseURL sets the public base URL used to build reset links.
func WithBaseURL(url string) Option {
	return func(s *Service) { s.baseURL = url }
}

// WithAfterSignUp registers a hook that runs after a successful sign-up,
// before the response is returned. Hook failures are logged, not surfaced:
// the account already exists and the user should not be blocked on
// bootstrap work like seeding default categories.
func WithAfterSignUp(fn func(context.Context, *User) error) Option {
	return func(s *Service) { s.afterSignUp = fn }
}

// NewService creates the auth service. tokenSecret signs password reset
// tokens and must stay stable across restarts for issued tokens to survive.
func NewService(storage Storage, tokenSecret string, opts ...Option) *Service {
	s := &Service{
		storage:       storage,
		tokenSecret:   tokenSecret,
		bcryptCost:    bcrypt.DefaultCost,
		resetTokenTTL: time.Hour,
		baseURL:       "http://localhost:8080",
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SignUp registers a new account. The confirmation must match the password,
// the email must be unused, and the hook (default category seeding) runs
// before returning.
func (s *Service) SignUp(ctx context.Context, name, emailAddr, password, confirm string) (*User, error) {
	name = sanitizer.NormalizeName(name)
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLength("name", name, 100),
		validator.ValidEmail("email", emailAddr),
		validator.MinLength("password", password, 8),
		validator.MaxLength("password", password, 128),
		validator.Matches("confirmPassword", confirm, password, "passwords do not match"),
	); err != nil {
		return nil, err
	}

	_, err := s.storage.GetUserByEmail(ctx, emailAddr)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, errors.Join(ErrStorageFailed, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        emailAddr,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.afterSignUp != nil {
		if err := s.afterSignUp(ctx, user); err != nil {
			s.log.ErrorContext(ctx, "after sign-up hook failed",
				logger.UserID(user.ID.String()),
				logger.Error(err),
				logger.Component("auth"),
			)
		}
	}

	return user, nil
}

// SignIn verifies the credentials. Every failure collapses into
// ErrInvalidCredentials so responses never reveal which part was wrong.
func (s *Service) SignIn(ctx context.Context, emailAddr, password string) (*User, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	user, err := s.storage.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CurrentUser loads the account for a resolved session.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.storage.GetUserByID(ctx, userID)
}

// RequestPasswordReset issues a reset token and emails it to the account, if
// one exists. It always returns nil: a different outcome for unknown emails
// would let callers enumerate registered addresses.
func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	user, err := s.storage.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.log.ErrorContext(ctx, "password reset lookup failed", logger.Error(err), logger.Component("auth"))
		}
		return nil
	}

	expiresAt := time.Now().Add(s.resetTokenTTL)
	resetToken, err := token.Generate(resetTokenPayload{
		ID:       user.ID.String(),
		Email:    user.Email,
		Subject:  subjectPasswordReset,
		ExpireAt: expiresAt.Unix(),
	}, s.tokenSecret)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to generate reset token", logger.Error(err), logger.Component("auth"))
		return nil
	}

	if s.mailer == nil {
		s.log.WarnContext(ctx, "no mailer configured, skipping reset email", logger.Component("auth"))
		return nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, resetToken)
	err = s.mailer.Send(ctx, email.SendParams{
		To:      user.Email,
		Subject: "Reset your QuoteKeeper password",
		BodyHTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Click the link below to reset your password. The link expires in %s.</p><p><a href="%s">Reset password</a></p><p>If you did not request this, you can ignore this email.</p>`,
			user.Name, s.resetTokenTTL, resetURL,
		),
		Tag: "password-reset",
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send reset email", logger.Error(err), logger.Component("auth"))
	}

	return nil
}

// ResetPassword validates the token and replaces the account's credential.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword, confirm string) error {
	if err := validator.Apply(
		validator.MinLength("password", newPassword, 8),
		validator.MaxLength("password", newPassword, 128),
		validator.Matches("confirmPassword", confirm, newPassword, "passwords do not match"),
	); err != nil {
		return err
	}

	payload, err := token.Parse[resetTokenPayload](resetToken, s.tokenSecret)
	if err != nil {
		return ErrTokenInvalid
	}
	if payload.Subject != subjectPasswordReset {
		return ErrTokenInvalid
	}
	if time.Now().Unix() > payload.ExpireAt {
		return ErrTokenExpired
	}

	userID, err := uuid.Parse(payload.ID)
	if err != nil {
		return ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.storage.UpdatePasswordHash(ctx, userID, hash)
}
