package clientv3

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// MemClient implements psapi.MemClient.
type MemClient struct {
	httpClient *internalhttp.Client
}

// NewMemClient creates a new mem client.
func NewMemClient(httpClient *internalhttp.Client) *MemClient {
	return &MemClient{
		httpClient: httpClient,
	}
}

// Settings implements psapi.MemClient.Settings.
func (c *MemClient) Settings(ctx context.Context) (*psapi.V3MemSettings, error) {
	resp, err := c.httpClient.Get(ctx, "/mem/settings", nil)
	if err != nil {
		return nil, fmt.Errorf("getting member settings: %w", err)
	}

	var settings psapi.V3MemSettings

	err = json.Unmarshal(resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing member settings: %w", err)
	}

	return &settings, nil
}

// ListCollections implements psapi.MemClient.ListCollections.
func (c *MemClient) ListCollections(ctx context.Context, params *psapi.QueryParams) ([]psapi.V3Collection, error) {
	resp, err := c.httpClient.Get(ctx, "/mem/collections", queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing member collections: %w", err)
	}

	var collections []psapi.V3Collection

	err = json.Unmarshal(resp.Body, &collections)
	if err != nil {
		return nil, fmt.Errorf("parsing member collections: %w", err)
	}

	return collections, nil
}

// ListGalleries implements psapi.MemClient.ListGalleries.
func (c *MemClient) ListGalleries(ctx context.Context, params *psapi.QueryParams) ([]psapi.V3Gallery, error) {
	resp, err := c.httpClient.Get(ctx, "/mem/galleries", queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing member galleries: %w", err)
	}

	var galleries []psapi.V3Gallery

	err = json.Unmarshal(resp.Body, &galleries)
	if err != nil {
		return nil, fmt.Errorf("parsing member galleries: %w", err)
	}

	return galleries, nil
}
