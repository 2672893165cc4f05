package categories_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotekeeper/quotekeeper/modules/categories"
	"github.com/quotekeeper/quotekeeper/pkg/cookie"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

type categoriesTestEnv struct {
	srv     *httptest.Server
	session *session.Session
}

func newCategoriesEnv(t *testing.T) *categoriesTestEnv {
	t.Helper()

	cookies := cookie.New()
	store := session.NewMemoryStore(0)
	sessions := session.NewManager(store, cookies)
	selector := failover.NewSelector(func(context.Context) error { return nil })

	svc := categories.NewService(categories.NewMemoryStorage())
	srv := httptest.NewServer(categories.Router(svc, sessions, selector))
	t.Cleanup(srv.Close)

	sess := session.New(uuid.New(), 7*24*time.Hour)
	require.NoError(t, store.Create(context.Background(), sess))

	return &categoriesTestEnv{srv: srv, session: sess}
}

func (e *categoriesTestEnv) do(t *testing.T, method, path string, body any, authenticated bool) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: e.session.ID.String()})
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestCategoriesEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		env := newCategoriesEnv(t)

		resp, payload := env.do(t, http.MethodGet, "/", nil, false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", payload["error"])
	})

	t.Run("add normalizes and lists", func(t *testing.T) {
		t.Parallel()
		env := newCategoriesEnv(t)

		resp, payload := env.do(t, http.MethodPost, "/", map[string]string{"name": "  Stoicism  "}, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		category, ok := payload["category"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "stoicism", category["name"])

		resp, payload = env.do(t, http.MethodGet, "/", nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list, ok := payload["categories"].([]any)
		require.True(t, ok)
		assert.Len(t, list, 1)
		assert.Equal(t, false, payload["fallbackMode"])
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		env := newCategoriesEnv(t)

		resp, payload := env.do(t, http.MethodPost, "/", map[string]string{"name": "   "}, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, payload["error"])
	})

	t.Run("rename missing category", func(t *testing.T) {
		t.Parallel()
		env := newCategoriesEnv(t)

		resp, payload := env.do(t, http.MethodPut, "/"+uuid.NewString(), map[string]string{"name": "renamed"}, true)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Category not found", payload["error"])
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		env := newCategoriesEnv(t)

		resp, payload := env.do(t, http.MethodDelete, "/"+uuid.NewString(), nil, true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, payload["success"])
	})
}
