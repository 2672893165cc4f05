package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/modules/quotes"
	"github.com/quotekeeper/quotekeeper/pkg/qrcode"
	"github.com/quotekeeper/quotekeeper/pkg/token"
)

// subjectShare tags share tokens apart from other tokens signed with the
// same application secret.
const subjectShare = "share"

type sharePayload struct {
	QuoteID string `json:"qid"`
	Subject string `json:"sub"`
}

// QuoteGetter is the slice of quote storage share resolution needs.
type QuoteGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*quotes.Quote, error)
}

// Service issues and resolves signed share links. Tokens carry only the
// quote id and never expire: a shared quote stays shared until deleted.
type Service struct {
	quotes  QuoteGetter
	secret  string
	baseURL string
}

// NewService creates the share service. baseURL is the public origin used
// in generated links.
func NewService(getter QuoteGetter, secret, baseURL string) *Service {
	return &Service{quotes: getter, secret: secret, baseURL: baseURL}
}

// CreateLink issues a share token for one of the user's quotes.
func (s *Service) CreateLink(ctx context.Context, userID, quoteID uuid.UUID) (string, string, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return "", "", ErrQuoteNotFound
	}
	if quote.UserID != userID {
		return "", "", ErrQuoteNotFound
	}

	shareToken, err := token.Generate(sharePayload{
		QuoteID: quoteID.String(),
		Subject: subjectShare,
	}, s.secret)
	if err != nil {
		return "", "", fmt.Errorf("generate share token: %w", err)
	}

	return shareToken, s.URL(shareToken), nil
}

// Resolve validates a share token and returns the quote's public payload,
// without the owner's identity.
func (s *Service) Resolve(ctx context.Context, shareToken string) (*quotes.Public, error) {
	payload, err := token.Parse[sharePayload](shareToken, s.secret)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if payload.Subject != subjectShare {
		return nil, ErrInvalidToken
	}

	quoteID, err := uuid.Parse(payload.QuoteID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, ErrQuoteNotFound
	}

	public := quote.Public()
	return &public, nil
}

// QRCode renders the share link as a PNG QR code. The token is resolved
// first so dead links never get a scannable code.
func (s *Service) QRCode(ctx context.Context, shareToken string, size int) ([]byte, error) {
	if _, err := s.Resolve(ctx, shareToken); err != nil {
		return nil, err
	}
	return qrcode.Generate(s.URL(shareToken), size)
}

// URL builds the public share URL for a token.
func (s *Service) URL(shareToken string) string {
	return fmt.Sprintf("%s/share/%s", s.baseURL, shareToken)
}
