package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/failover"
)

// FailoverStorage routes user storage calls to the durable backend or the
// in-memory fallback according to the selector's cached verdict, mirroring
// how sessions fail over.
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

func (f *FailoverStorage) CreateUser(ctx context.Context, user *User) error {
	return f.pick(ctx).CreateUser(ctx, user)
}

func (f *FailoverStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.pick(ctx).GetUserByID(ctx, id)
}

func (f *FailoverStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return f.pick(ctx).GetUserByEmail(ctx, email)
}

func (f *FailoverStorage) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash []byte) error {
	return f.pick(ctx).UpdatePasswordHash(ctx, userID, hash)
}
