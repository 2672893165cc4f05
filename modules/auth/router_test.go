package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quotekeeper/quotekeeper/modules/auth"
	"github.com/quotekeeper/quotekeeper/pkg/consent"
	"github.com/quotekeeper/quotekeeper/pkg/cookie"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cookies := cookie.New()
	gate := consent.NewGate(cookies)
	selector := failover.NewSelector(func(context.Context) error { return nil })

	storage := auth.NewMemoryStorage()
	svc := auth.NewService(storage, "test-secret", auth.WithBcryptCost(bcrypt.MinCost))

	sessions := session.NewManager(session.NewMemoryStore(0), cookies)

	srv := httptest.NewServer(auth.Router(svc, sessions, gate, selector))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestAuthEndpoints(t *testing.T) {
	t.Parallel()

	signUpBody := map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	}

	t.Run("sign-up signs the user in", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		client := newClient(t)

		resp := postJSON(t, client, srv.URL+"/sign-up", signUpBody)
		payload := decodeBody(t, resp)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, payload["success"])
		assert.Contains(t, payload, "needsCookieConsent")

		user, ok := payload["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "ada@example.com", user["email"])
		assert.NotContains(t, user, "password")
		assert.NotContains(t, user, "passwordHash")

		// The session cookie from sign-up authenticates /me.
		meResp, err := client.Get(srv.URL + "/me")
		require.NoError(t, err)
		mePayload := decodeBody(t, meResp)
		require.Equal(t, http.StatusOK, meResp.StatusCode)
		assert.Equal(t, true, mePayload["success"])

		me, ok := mePayload["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada", me["name"])
		assert.Equal(t, "ada@example.com", me["email"])
		assert.NotEmpty(t, me["id"])
		assert.NotEmpty(t, me["created_at"])
	})

	t.Run("duplicate sign-up", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		client := newClient(t)

		resp := postJSON(t, client, srv.URL+"/sign-up", signUpBody)
		decodeBody(t, resp)

		resp = postJSON(t, newClient(t), srv.URL+"/sign-up", signUpBody)
		payload := decodeBody(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Email already in use", payload["error"])
	})

	t.Run("sign-in with wrong password", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		client := newClient(t)

		decodeBody(t, postJSON(t, client, srv.URL+"/sign-up", signUpBody))

		resp := postJSON(t, newClient(t), srv.URL+"/sign-in", map[string]string{
			"email":    "ada@example.com",
			"password": "wrongpass",
		})
		payload := decodeBody(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", payload["error"])
	})

	t.Run("sign-out revokes the session", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)
		client := newClient(t)

		decodeBody(t, postJSON(t, client, srv.URL+"/sign-up", signUpBody))
		decodeBody(t, postJSON(t, client, srv.URL+"/sign-out", map[string]string{}))

		meResp, err := client.Get(srv.URL + "/me")
		require.NoError(t, err)
		decodeBody(t, meResp)
		assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
	})

	t.Run("me without session", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)

		resp, err := http.Get(srv.URL + "/me")
		require.NoError(t, err)
		payload := decodeBody(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", payload["error"])
	})

	t.Run("forgot-password never discloses account existence", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t)

		resp := postJSON(t, newClient(t), srv.URL+"/forgot-password", map[string]string{
			"email": "ghost@example.com",
		})
		payload := decodeBody(t, resp)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, payload["success"])
	})
}
