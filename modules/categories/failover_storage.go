package categories

import (
	"context"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/failover"
)

// FailoverStorage routes category storage calls to the durable backend or
// the in-memory fallback according to the selector's cached verdict.
type FailoverStorage struct {
	durable  Storage
	fallback Storage
	selector *failover.Selector
}

// NewFailoverStorage combines durable and fallback storage behind one Storage.
func NewFailoverStorage(durable, fallback Storage, selector *failover.Selector) *FailoverStorage {
	return &FailoverStorage{durable: durable, fallback: fallback, selector: selector}
}

func (f *FailoverStorage) pick(ctx context.Context) Storage {
	if f.selector.UseFallback(ctx) {
		return f.fallback
	}
	return f.durable
}

func (f *FailoverStorage) Create(ctx context.Context, category *Category) error {
	return f.pick(ctx).Create(ctx, category)
}

func (f *FailoverStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	return f.pick(ctx).ListByUser(ctx, userID)
}

func (f *FailoverStorage) Rename(ctx context.Context, id, userID uuid.UUID, name string) error {
	return f.pick(ctx).Rename(ctx, id, userID, name)
}

func (f *FailoverStorage) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return f.pick(ctx).Delete(ctx, id, userID)
}
