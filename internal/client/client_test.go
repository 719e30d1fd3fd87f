package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylight-io/psapi-client/pkg/psapi"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(&psapi.Config{APIKey: "key"})
	require.ErrorIs(t, err, psapi.ErrEndpointRequired)

	_, err = New(&psapi.Config{Endpoint: "https://example.com"})
	require.ErrorIs(t, err, psapi.ErrAPIKeyRequired)
}

func TestNew_WithAuthToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "existing-token", r.Header.Get("X-PS-Auth-Token"))
		_ = json.NewEncoder(w).Encode(psapi.SessionInfo{Authenticated: true})
	}))
	defer server.Close()

	client, err := New(&psapi.Config{
		Endpoint:  server.URL,
		APIKey:    "key",
		AuthToken: "existing-token",
	})
	require.NoError(t, err)
	assert.True(t, client.Session().Authenticated())

	_, err = client.Auth().CurrentSession(context.Background())
	require.NoError(t, err)
}

func TestClient_UnauthenticatedFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)
	ctx := context.Background()

	_, err := client.Collections().List(ctx, nil)
	require.ErrorIs(t, err, psapi.ErrNotAuthenticated)

	_, err = client.Galleries().Get(ctx, "G1")
	require.ErrorIs(t, err, psapi.ErrNotAuthenticated)

	_, err = client.Media().Download(ctx, "M1")
	require.ErrorIs(t, err, psapi.ErrNotAuthenticated)

	_, err = client.Users().Me(ctx)
	require.ErrorIs(t, err, psapi.ErrNotAuthenticated)

	assert.Equal(t, int32(0), calls.Load())
}

func TestAuthClient_Login(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/authenticate", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("X-PS-Auth-Token"))
		assert.Equal(t, "test-key", r.Header.Get("X-PS-API-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("email"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		assert.Equal(t, "token", r.PostForm.Get("mode"))
		assert.Equal(t, "O123", r.PostForm.Get("org_id"))

		_ = json.NewEncoder(w).Encode(psapi.Session{
			Token: "fresh-token",
			OrgID: "O123",
		})
	}))
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)

	session, err := client.Auth().Login(context.Background(), "user@example.com", "hunter2", "O123")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", session.Token)

	token, err := client.Session().Token()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, "O123", client.Session().OrgID())
}

func TestAuthClient_LoginOmitsEmptyOrgID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		_, present := r.PostForm["org_id"]
		assert.False(t, present, "empty org_id must be omitted, not sent as org_id=")

		_ = json.NewEncoder(w).Encode(psapi.Session{Token: "tok"})
	}))
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)

	_, err := client.Auth().Login(context.Background(), "user@example.com", "hunter2", "")
	require.NoError(t, err)
}

func TestAuthClient_LoginFailureLeavesSessionUntouched(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"title":"Invalid credentials"}]}`))
	}))
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)

	_, err := client.Auth().Login(context.Background(), "user@example.com", "wrong", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.False(t, client.Session().Authenticated())
}

func TestAuthClient_SubsequentCallUsesStoredToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/psapi/v4.0/authenticate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(psapi.Session{Token: "issued-token"})
	})
	mux.HandleFunc("/psapi/v4.0/users/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "issued-token", r.Header.Get("X-PS-Auth-Token"))
		_ = json.NewEncoder(w).Encode(psapi.User{ID: "U1", Email: "user@example.com"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)
	ctx := context.Background()

	_, err := client.Auth().Login(ctx, "user@example.com", "hunter2", "")
	require.NoError(t, err)

	user, err := client.Users().Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "U1", user.ID)
}

func TestAuthClient_TwoFactorFlow(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/psapi/v4.0/authenticate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(psapi.Session{TwoFactorRequired: true})
	})
	mux.HandleFunc("/psapi/v4.0/authenticate/two-factor", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "000111", r.PostForm.Get("code"))
		_ = json.NewEncoder(w).Encode(psapi.Session{Token: "verified-token"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewUnauthenticatedTestClient(server.URL)
	ctx := context.Background()

	_, err := client.Auth().Login(ctx, "user@example.com", "hunter2", "")
	require.ErrorIs(t, err, psapi.ErrTwoFactorRequired)
	assert.False(t, client.Session().Authenticated())
	assert.True(t, client.Session().TwoFactorRequired())

	session, err := client.Auth().VerifyTwoFactor(ctx, "000111")
	require.NoError(t, err)
	assert.Equal(t, "verified-token", session.Token)
	assert.True(t, client.Session().Authenticated())
}

func TestAuthClient_Logout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psapi/v4.0/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Auth().Logout(context.Background())
	require.NoError(t, err)
	assert.False(t, client.Session().Authenticated())
}
