package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// UsersClient implements psapi.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Me implements psapi.UsersClient.Me.
func (c *UsersClient) Me(ctx context.Context) (*psapi.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user psapi.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Get implements psapi.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*psapi.User, error) {
	path := "/users/" + userID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user psapi.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}
