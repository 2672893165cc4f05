package share_test

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/modules/quotes"
	"github.com/quotekeeper/quotekeeper/modules/share"
)

func seedQuote(t *testing.T, storage *quotes.MemoryStorage, userID uuid.UUID) *quotes.Quote {
	t.Helper()
	quote := &quotes.Quote{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      "Knowledge speaks, but wisdom listens",
		Author:    "Jimi Hendrix",
		Category:  "wisdom",
		CreatedAt: time.Now(),
	}
	require.NoError(t, storage.Create(context.Background(), quote))
	return quote
}

func TestShareLinkRoundTrip(t *testing.T) {
	t.Parallel()

	storage := quotes.NewMemoryStorage()
	svc := share.NewService(storage, "test-secret", "https://quotekeeper.app")
	userID := uuid.New()
	quote := seedQuote(t, storage, userID)

	shareToken, shareURL, err := svc.CreateLink(context.Background(), userID, quote.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(shareURL, "https://quotekeeper.app/share/"))
	assert.Contains(t, shareURL, shareToken)

	public, err := svc.Resolve(context.Background(), shareToken)
	require.NoError(t, err)
	assert.Equal(t, quote.Text, public.Text)
	assert.Equal(t, quote.Author, public.Author)
	assert.Equal(t, quote.ID, public.ID)
}

func TestShareOwnership(t *testing.T) {
	t.Parallel()

	storage := quotes.NewMemoryStorage()
	svc := share.NewService(storage, "test-secret", "https://quotekeeper.app")
	quote := seedQuote(t, storage, uuid.New())

	_, _, err := svc.CreateLink(context.Background(), uuid.New(), quote.ID)
	assert.ErrorIs(t, err, share.ErrQuoteNotFound, "strangers cannot share another user's quote")

	_, _, err = svc.CreateLink(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, share.ErrQuoteNotFound)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	t.Parallel()

	storage := quotes.NewMemoryStorage()
	svc := share.NewService(storage, "test-secret", "https://quotekeeper.app")
	userID := uuid.New()
	quote := seedQuote(t, storage, userID)

	shareToken, _, err := svc.CreateLink(context.Background(), userID, quote.ID)
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Resolve(context.Background(), "garbage")
		assert.ErrorIs(t, err, share.ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		tampered := shareToken[:len(shareToken)-2] + "xx"
		_, err := svc.Resolve(context.Background(), tampered)
		assert.ErrorIs(t, err, share.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other := share.NewService(storage, "other-secret", "https://quotekeeper.app")
		_, err := other.Resolve(context.Background(), shareToken)
		assert.ErrorIs(t, err, share.ErrInvalidToken)
	})

	t.Run("deleted quote", func(t *testing.T) {
		t.Parallel()
		victim := seedQuote(t, storage, userID)
		victimToken, _, err := svc.CreateLink(context.Background(), userID, victim.ID)
		require.NoError(t, err)

		require.NoError(t, storage.Delete(context.Background(), victim.ID, userID))
		_, err = svc.Resolve(context.Background(), victimToken)
		assert.ErrorIs(t, err, share.ErrQuoteNotFound)
	})
}

func TestQRCode(t *testing.T) {
	t.Parallel()

	storage := quotes.NewMemoryStorage()
	svc := share.NewService(storage, "test-secret", "https://quotekeeper.app")
	userID := uuid.New()
	quote := seedQuote(t, storage, userID)

	shareToken, _, err := svc.CreateLink(context.Background(), userID, quote.ID)
	require.NoError(t, err)

	t.Run("valid token renders a png", func(t *testing.T) {
		t.Parallel()
		data, err := svc.QRCode(context.Background(), shareToken, 256)
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("invalid token renders nothing", func(t *testing.T) {
		t.Parallel()
		_, err := svc.QRCode(context.Background(), "garbage", 256)
		assert.ErrorIs(t, err, share.ErrInvalidToken)
	})
}
