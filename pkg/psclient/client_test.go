package psclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skylight-io/psapi-client/pkg/psapi"
	"github.com/skylight-io/psapi-client/pkg/psclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &psapi.Config{
			Endpoint: "https://www.example.com",
			APIKey:   "key",
		}

		client, err := psclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects nil config", func(t *testing.T) {
		t.Parallel()

		_, err := psclient.New(context.Background(), nil)
		require.ErrorIs(t, err, psapi.ErrConfigRequired)
	})

	t.Run("normalizes endpoint", func(t *testing.T) {
		t.Parallel()

		config := &psapi.Config{
			Endpoint: "www.example.com/",
			APIKey:   "key",
		}

		_, err := psclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://www.example.com", config.Endpoint)
	})
}

func TestNew_LoginDuringConstruction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/psapi/v4.0/authenticate", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("email"))

		_ = json.NewEncoder(w).Encode(psapi.Session{Token: "constructed-token"})
	}))
	defer server.Close()

	client, err := psclient.New(context.Background(), &psapi.Config{
		Endpoint: server.URL,
		APIKey:   "key",
		Email:    "user@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_LoginFailureDuringConstruction(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"title":"Invalid credentials"}]}`))
	}))
	defer server.Close()

	_, err := psclient.New(context.Background(), &psapi.Config{
		Endpoint: server.URL,
		APIKey:   "key",
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "seed-token", r.Header.Get("X-PS-Auth-Token"))
		_ = json.NewEncoder(w).Encode(psapi.User{ID: "U1"})
	}))
	defer server.Close()

	client, err := psclient.NewWithToken(context.Background(), server.URL, "key", "seed-token")
	require.NoError(t, err)

	user, err := client.Users().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "U1", user.ID)
}

func TestNewV3(t *testing.T) {
	t.Parallel()

	var sawLogin, sawSettings bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/mem/authenticate"):
			sawLogin = true

			_, _ = w.Write([]byte(`{"data":{"token":"v3-token"}}`))
		case strings.HasSuffix(r.URL.Path, "/mem/settings"):
			sawSettings = true

			assert.Equal(t, "v3-token", r.Header.Get("X-PS-Auth-Token"))
			_, _ = w.Write([]byte(`{"data":{"mem_id":"U1","email":"user@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := psclient.NewV3(context.Background(), &psapi.Config{
		Endpoint: server.URL,
		APIKey:   "key",
		Email:    "user@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	settings, err := client.Mem().Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "U1", settings.MemID)
	assert.True(t, sawLogin)
	assert.True(t, sawSettings)
}
