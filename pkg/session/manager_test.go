package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/pkg/cookie"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	return session.NewManager(store, cookie.New(), opts...), store
}

// requestWith returns a request carrying the cookies set on w.
func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			r.AddCookie(c)
		}
	}
	return r
}

func TestManager_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create then get returns same user", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)
		userID := uuid.New()

		w := httptest.NewRecorder()
		created, err := m.Create(ctx, w, userID)
		require.NoError(t, err)
		require.NotNil(t, created)

		got, err := m.Get(ctx, requestWith(w))
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("cookie attributes", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		w := httptest.NewRecorder()
		_, err := m.Create(ctx, w, uuid.New())
		require.NoError(t, err)

		c := w.Result().Cookies()[0]
		assert.Equal(t, "session_id", c.Name)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)
		assert.False(t, c.Secure)

		// The cookie value is the raw session identifier.
		_, err = session.ParseID(c.Value)
		assert.NoError(t, err)
	})

	t.Run("secure flag from config", func(t *testing.T) {
		t.Parallel()
		cfg := session.DefaultConfig()
		cfg.SecureCookies = true
		m, _ := newManager(t, session.WithConfig(cfg))

		w := httptest.NewRecorder()
		_, err := m.Create(ctx, w, uuid.New())
		require.NoError(t, err)
		assert.True(t, w.Result().Cookies()[0].Secure)
	})

	t.Run("nil user id fails", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		w := httptest.NewRecorder()
		_, err := m.Create(ctx, w, uuid.Nil)
		assert.ErrorIs(t, err, session.ErrCreateFailed)
	})
}

func TestManager_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("malformed identifier skips store lookup", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "not-a-uuid"})

		_, err := m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: uuid.NewString()})

		_, err := m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("expired session removed lazily and idempotently", func(t *testing.T) {
		t.Parallel()
		m, store := newManager(t)

		expired := session.New(uuid.New(), time.Hour)
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		require.NoError(t, store.Create(ctx, expired))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: expired.ID.String()})

		_, err := m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)

		// The record is gone from the store.
		_, err = store.Get(ctx, expired.ID)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)

		// A second read is equally clean.
		_, err = m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("destroy then get returns not authenticated", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		w := httptest.NewRecorder()
		_, err := m.Create(ctx, w, uuid.New())
		require.NoError(t, err)
		r := requestWith(w)

		w2 := httptest.NewRecorder()
		require.NoError(t, m.Destroy(ctx, w2, r))

		_, err = m.Get(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("always clears cookie, even without a record", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: uuid.NewString()})

		w := httptest.NewRecorder()
		require.NoError(t, m.Destroy(ctx, w, r))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("idempotent without any cookie", func(t *testing.T) {
		t.Parallel()
		m, _ := newManager(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.NoError(t, m.Destroy(ctx, w, r))
		assert.NoError(t, m.Destroy(ctx, httptest.NewRecorder(), r))
	})
}

func TestParseID(t *testing.T) {
	t.Parallel()

	t.Run("accepts issued identifiers", func(t *testing.T) {
		t.Parallel()
		sess := session.New(uuid.New(), time.Hour)
		id, err := session.ParseID(sess.ID.String())
		require.NoError(t, err)
		assert.Equal(t, sess.ID, id)
	})

	t.Run("rejects non v4", func(t *testing.T) {
		t.Parallel()
		// UUID v1 has valid syntax but the wrong version.
		v1 := "c232ab00-9414-11ec-b3c8-9f68deced846"
		_, err := session.ParseID(v1)
		assert.ErrorIs(t, err, session.ErrInvalidSessionID)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "abc", "00000000-0000-0000-0000-000000000000"} {
			_, err := session.ParseID(raw)
			assert.ErrorIs(t, err, session.ErrInvalidSessionID, "raw %q", raw)
		}
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, _ := newManager(t)

	var captured *session.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = session.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := session.Middleware(m)(session.RequireAuth(inner))

	t.Run("authenticated request passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		created, err := m.Create(ctx, w, uuid.New())
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, requestWith(w))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, created.UserID, captured.UserID)
	})

	t.Run("anonymous request rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
