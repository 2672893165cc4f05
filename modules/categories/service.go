package categories

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/logger"
	"github.com/quotekeeper/quotekeeper/pkg/sanitizer"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

// Service implements category operations over a Storage.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the categories service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeName(name string) string {
	return strings.ToLower(sanitizer.NormalizeName(name))
}

// Add stores a new category for the user. Adding a name the user already
// has succeeds and returns the existing record: the UI offers quick-add
// buttons that certainly repeat names.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	name = normalizeName(name)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLength("name", name, 50),
	); err != nil {
		return nil, err
	}

	category := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	err := s.storage.Create(ctx, category)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrAlreadyExists) {
		return nil, err
	}

	existing, listErr := s.storage.ListByUser(ctx, userID)
	if listErr != nil {
		return nil, listErr
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i], nil
		}
	}
	// Lost a race between the duplicate detection and the listing; treat
	// the add as done anyway.
	s.log.WarnContext(ctx, "duplicate category vanished during add",
		logger.UserID(userID.String()), logger.Component("categories"))
	return category, nil
}

// List returns the user's categories oldest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	return s.storage.ListByUser(ctx, userID)
}

// Rename changes an owned category's name.
func (s *Service) Rename(ctx context.Context, id, userID uuid.UUID, name string) error {
	name = normalizeName(name)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.MaxLength("name", name, 50),
	); err != nil {
		return err
	}

	return s.storage.Rename(ctx, id, userID, name)
}

// Delete removes an owned category. Quotes keep their category string; only
// the selectable label disappears.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Delete(ctx, id, userID)
}

// SeedDefaults creates the default category set for a new account. Used as
// the auth module's after-sign-up hook. Existing names are skipped so the
// seeding is safe to repeat.
func (s *Service) SeedDefaults(ctx context.Context, userID uuid.UUID) error {
	var errs []error
	for _, name := range DefaultNames {
		err := s.storage.Create(ctx, &Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			CreatedAt: time.Now(),
		})
		if err != nil && !errors.Is(err, ErrAlreadyExists) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
