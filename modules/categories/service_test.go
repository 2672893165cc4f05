package categories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/modules/categories"
	"github.com/quotekeeper/quotekeeper/pkg/validator"
)

func TestServiceAdd(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and trims the name", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())

		category, err := svc.Add(context.Background(), uuid.New(), "  Stoic   Philosophy ")
		require.NoError(t, err)
		assert.Equal(t, "stoic philosophy", category.Name)
	})

	t.Run("duplicate add succeeds and returns the existing record", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		first, err := svc.Add(context.Background(), userID, "stoicism")
		require.NoError(t, err)

		second, err := svc.Add(context.Background(), userID, "Stoicism")
		require.NoError(t, err, "duplicate add must be an idempotent success")
		assert.Equal(t, first.ID, second.ID)

		list, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("same name across users is allowed", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())

		_, err := svc.Add(context.Background(), uuid.New(), "stoicism")
		require.NoError(t, err)
		_, err = svc.Add(context.Background(), uuid.New(), "stoicism")
		require.NoError(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())

		_, err := svc.Add(context.Background(), uuid.New(), "   ")
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestServiceRenameAndDelete(t *testing.T) {
	t.Parallel()

	t.Run("rename", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		category, err := svc.Add(context.Background(), userID, "temp")
		require.NoError(t, err)

		require.NoError(t, svc.Rename(context.Background(), category.ID, userID, "Renamed"))

		list, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "renamed", list[0].Name)
	})

	t.Run("rename collision", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		_, err := svc.Add(context.Background(), userID, "keep")
		require.NoError(t, err)
		category, err := svc.Add(context.Background(), userID, "temp")
		require.NoError(t, err)

		err = svc.Rename(context.Background(), category.ID, userID, "keep")
		assert.ErrorIs(t, err, categories.ErrAlreadyExists)
	})

	t.Run("rename not owned", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())

		category, err := svc.Add(context.Background(), uuid.New(), "mine")
		require.NoError(t, err)

		err = svc.Rename(context.Background(), category.ID, uuid.New(), "stolen")
		assert.ErrorIs(t, err, categories.ErrCategoryNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		category, err := svc.Add(context.Background(), userID, "temp")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), category.ID, userID))
		require.NoError(t, svc.Delete(context.Background(), category.ID, userID))

		list, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestSeedDefaults(t *testing.T) {
	t.Parallel()

	t.Run("creates the default set", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		require.NoError(t, svc.SeedDefaults(context.Background(), userID))

		list, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		names := make([]string, 0, len(list))
		for _, category := range list {
			names = append(names, category.Name)
		}
		assert.ElementsMatch(t, []string{"inspiration", "motivation", "wisdom", "humor", "other"}, names)
	})

	t.Run("repeat seeding is harmless", func(t *testing.T) {
		t.Parallel()
		svc := categories.NewService(categories.NewMemoryStorage())
		userID := uuid.New()

		require.NoError(t, svc.SeedDefaults(context.Background(), userID))
		require.NoError(t, svc.SeedDefaults(context.Background(), userID))

		list, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, list, 5)
	})
}
