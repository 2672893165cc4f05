package quotes_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/modules/quotes"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

func TestServiceAdd(t *testing.T) {
	t.Parallel()

	t.Run("stores the quote", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())
		userID := uuid.New()

		quote, err := svc.Add(context.Background(), userID, "To be or not to be", "Shakespeare", "wisdom")
		require.NoError(t, err)
		assert.Equal(t, userID, quote.UserID)
		assert.Equal(t, "Shakespeare", quote.Author)
		assert.Equal(t, "wisdom", quote.Category)
		assert.NotEqual(t, uuid.Nil, quote.ID)
	})

	t.Run("empty author defaults to Unknown", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())

		quote, err := svc.Add(context.Background(), uuid.New(), "Some quote text", "", "other")
		require.NoError(t, err)
		assert.Equal(t, "Unknown", quote.Author)
	})

	t.Run("empty category uses keyword suggestion", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())

		quote, err := svc.Add(context.Background(), uuid.New(), "Believe in your dreams and hope", "", "")
		require.NoError(t, err)
		assert.Equal(t, "inspiration", quote.Category)
	})

	t.Run("category is lowercased", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())

		quote, err := svc.Add(context.Background(), uuid.New(), "Some quote text", "", "Wisdom")
		require.NoError(t, err)
		assert.Equal(t, "wisdom", quote.Category)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())

		_, err := svc.Add(context.Background(), uuid.New(), "   ", "Someone", "other")
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestServiceListOrdering(t *testing.T) {
	t.Parallel()

	storage := quotes.NewMemoryStorage()
	svc := quotes.NewService(storage)
	userID := uuid.New()

	base := time.Now()
	for i, text := range []string{"first quote text", "second quote text", "third quote text"} {
		require.NoError(t, storage.Create(context.Background(), &quotes.Quote{
			ID:        uuid.New(),
			UserID:    userID,
			Text:      text,
			Author:    "Unknown",
			Category:  "other",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	// Another user's quote never leaks into the listing.
	require.NoError(t, storage.Create(context.Background(), &quotes.Quote{
		ID: uuid.New(), UserID: uuid.New(), Text: "not mine", Author: "Unknown",
		Category: "other", CreatedAt: base,
	}))

	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third quote text", list[0].Text)
	assert.Equal(t, "first quote text", list[2].Text)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	t.Parallel()

	t.Run("owner can update", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())
		userID := uuid.New()

		quote, err := svc.Add(context.Background(), userID, "original text here", "A", "other")
		require.NoError(t, err)

		require.NoError(t, svc.Update(context.Background(), quote.ID, userID, "updated text here", "B", "wisdom"))

		got, err := svc.Get(context.Background(), quote.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, "updated text here", got.Text)
		assert.Equal(t, "B", got.Author)
		assert.Equal(t, "wisdom", got.Category)
	})

	t.Run("non-owner cannot update or read", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())
		owner := uuid.New()
		stranger := uuid.New()

		quote, err := svc.Add(context.Background(), owner, "original text here", "A", "other")
		require.NoError(t, err)

		err = svc.Update(context.Background(), quote.ID, stranger, "hijacked text", "X", "humor")
		assert.ErrorIs(t, err, quotes.ErrQuoteNotFound)

		_, err = svc.Get(context.Background(), quote.ID, stranger)
		assert.ErrorIs(t, err, quotes.ErrQuoteNotFound)
	})

	t.Run("delete is idempotent and owner scoped", func(t *testing.T) {
		t.Parallel()
		svc := quotes.NewService(quotes.NewMemoryStorage())
		owner := uuid.New()

		quote, err := svc.Add(context.Background(), owner, "to be deleted soon", "A", "other")
		require.NoError(t, err)

		// A stranger's delete silently does nothing.
		require.NoError(t, svc.Delete(context.Background(), quote.ID, uuid.New()))
		_, err = svc.Get(context.Background(), quote.ID, owner)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), quote.ID, owner))
		_, err = svc.Get(context.Background(), quote.ID, owner)
		assert.ErrorIs(t, err, quotes.ErrQuoteNotFound)

		// Deleting again still succeeds.
		require.NoError(t, svc.Delete(context.Background(), quote.ID, owner))
	})
}

func TestFailoverRouting(t *testing.T) {
	t.Parallel()

	durable := quotes.NewMemoryStorage()
	fallback := quotes.NewMemoryStorage()
	selector := failover.NewSelector(func(context.Context) error { return assert.AnError })
	svc := quotes.NewService(quotes.NewFailoverStorage(durable, fallback, selector))

	userID := uuid.New()
	quote, err := svc.Add(context.Background(), userID, "saved during an outage", "", "")
	require.NoError(t, err)

	_, err = fallback.GetByID(context.Background(), quote.ID)
	assert.NoError(t, err, "quote should land in the fallback store")
	_, err = durable.GetByID(context.Background(), quote.ID)
	assert.ErrorIs(t, err, quotes.ErrQuoteNotFound)
}
