package clientv3

import (
	"github.com/skylight-io/psapi-client/internal/auth"
	"github.com/skylight-io/psapi-client/internal/constants"
	internalhttp "github.com/skylight-io/psapi-client/internal/http"
)

// NewTestClient creates a v3 client against the given base URL with an
// already authenticated session, for use in tests.
func NewTestClient(baseURL string) *Client {
	session := auth.NewSession()
	session.Set("test-token", "", false)

	httpClient := internalhttp.NewClient(baseURL, constants.BasePathV3, "test-key", session,
		internalhttp.WithUnwrap(internalhttp.UnwrapDataEnvelope))

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NewUnauthenticatedTestClient creates a v3 client with an empty session, for
// exercising the fail-fast path in tests.
func NewUnauthenticatedTestClient(baseURL string) *Client {
	session := auth.NewSession()

	httpClient := internalhttp.NewClient(baseURL, constants.BasePathV3, "test-key", session,
		internalhttp.WithUnwrap(internalhttp.UnwrapDataEnvelope))

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
