package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/quotekeeper/quotekeeper/pkg/failover"
)

// FailoverStore routes each call to the durable store or the in-memory
// fallback according to the selector's cached connectivity verdict. The
// choice is made per call, so a session created in the durable store just
// before an outage may be briefly invisible to a read served from the
// fallback; that staleness is bounded by the selector's freshness window.
type FailoverStore struct {
	durable  Store
	fallback Store
	selector *failover.Selector
}

// NewFailoverStore combines a durable store, a fallback store, and a
// selector into a single Store.
func NewFailoverStore(durable, fallback Store, selector *failover.Selector) *FailoverStore {
	return &FailoverStore{
		durable:  durable,
		fallback: fallback,
		selector: selector,
	}
}

// Degraded reports whether calls are currently being served by the
// fallback. Used by handlers to attach the fallback-mode indicator to
// responses.
func (f *FailoverStore) Degraded(ctx context.Context) bool {
	return f.selector.UseFallback(ctx)
}

func (f *FailoverStore) pick(ctx context.Context) Store {
	if f.selector.UseFallback(ctx) {
		return f.fallback
	}
	return f.durable
}

func (f *FailoverStore) Create(ctx context.Context, session *Session) error {
	return f.pick(ctx).Create(ctx, session)
}

func (f *FailoverStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return f.pick(ctx).Get(ctx, id)
}

func (f *FailoverStore) Delete(ctx context.Context, id uuid.UUID) error {
	return f.pick(ctx).Delete(ctx, id)
}

func (f *FailoverStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return f.pick(ctx).DeleteByUserID(ctx, userID)
}

func (f *FailoverStore) DeleteExpired(ctx context.Context) error {
	return f.pick(ctx).DeleteExpired(ctx)
}
