package quotes_test

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

	"github.com/quotekeeper/quotekeeper/modules/quotes"
	"github.com/quotekeeper/quotekeeper/pkg/cookie"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

type quotesTestEnv struct {
	srv     *httptest.Server
	session *session.Session
}

func newQuotesEnv(t *testing.T) *quotesTestEnv {
	t.Helper()

	cookies := cookie.New()
	store := session.NewMemoryStore(0)
	sessions := session.NewManager(store, cookies)
	selector := failover.NewSelector(func(context.Context) error { return nil })

	svc := quotes.NewService(quotes.NewMemoryStorage())
	srv := httptest.NewServer(quotes.Router(svc, sessions, selector))
	t.Cleanup(srv.Close)

	sess := session.New(uuid.New(), 7*24*time.Hour)
	require.NoError(t, store.Create(context.Background(), sess))

	return &quotesTestEnv{srv: srv, session: sess}
}

func (e *quotesTestEnv) do(t *testing.T, method, path string, body any, authenticated bool) (*http.Response, map[string]any) {
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

func TestQuotesEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		env := newQuotesEnv(t)

		resp, payload := env.do(t, http.MethodGet, "/", nil, false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", payload["error"])
	})

	t.Run("add and list round trip", func(t *testing.T) {
		t.Parallel()
		env := newQuotesEnv(t)

		resp, payload := env.do(t, http.MethodPost, "/", map[string]string{
			"text": "Believe in your dreams", "author": "", "category": "",
		}, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		quote, ok := payload["quote"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Unknown", quote["author"])
		assert.Equal(t, "inspiration", quote["category"])

		resp, payload = env.do(t, http.MethodGet, "/", nil, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list, ok := payload["quotes"].([]any)
		require.True(t, ok)
		assert.Len(t, list, 1)
		assert.Equal(t, false, payload["fallbackMode"])
	})

	t.Run("update with bad id", func(t *testing.T) {
		t.Parallel()
		env := newQuotesEnv(t)

		resp, payload := env.do(t, http.MethodPut, "/not-a-uuid", map[string]string{"text": "x"}, true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid quote id", payload["error"])
	})

	t.Run("suggest category", func(t *testing.T) {
		t.Parallel()
		env := newQuotesEnv(t)

		resp, payload := env.do(t, http.MethodPost, "/suggest-category", map[string]string{
			"text": "Laugh and the world laughs with you",
		}, true)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "humor", payload["category"])
		assert.Equal(t, true, payload["confident"])
	})
}
