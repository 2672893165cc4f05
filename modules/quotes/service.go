package quotes

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/sanitizer"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

// unknownAuthor is stored when a quote is added without an author.
const unknownAuthor = "Unknown"

// Service implements quote operations over a Storage, typically the
// failover-routed one.
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

// NewService creates the quotes service.
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

// Add stores a new quote for the user. A missing author becomes "Unknown"
// and a missing category falls back to the keyword suggestion.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, text, author, category string) (*Quote, error) {
	text = sanitizer.Trim(text)
	author = sanitizer.Trim(author)
	category = strings.ToLower(sanitizer.Trim(category))

	if err := validator.Apply(
		validator.Required("text", text),
		validator.MaxLength("text", text, 2000),
		validator.MaxLength("author", author, 200),
	); err != nil {
		return nil, err
	}

	if author == "" {
		author = unknownAuthor
	}
	if category == "" {
		category = SuggestCategory(text, author)
	}

	quote := &Quote{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		Author:    author,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := s.storage.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// List returns the user's quotes newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Quote, error) {
	return s.storage.ListByUser(ctx, userID)
}

// Get returns one of the user's quotes.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Quote, error) {
	quote, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.UserID != userID {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

// Update rewrites an owned quote.
func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, text, author, category string) error {
	text = sanitizer.Trim(text)
	author = sanitizer.Trim(author)
	category = strings.ToLower(sanitizer.Trim(category))

	if err := validator.Apply(
		validator.Required("text", text),
		validator.MaxLength("text", text, 2000),
		validator.MaxLength("author", author, 200),
	); err != nil {
		return err
	}

	if author == "" {
		author = unknownAuthor
	}

	return s.storage.Update(ctx, &Quote{
		ID:       id,
		UserID:   userID,
		Text:     text,
		Author:   author,
		Category: category,
	})
}

// Delete removes an owned quote. Absent quotes delete successfully.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.storage.Delete(ctx, id, userID)
}
