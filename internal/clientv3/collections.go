package clientv3

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// CollectionsClient implements psapi.V3CollectionsClient.
type CollectionsClient struct {
	httpClient *internalhttp.Client
}

// NewCollectionsClient creates a new v3 collections client.
func NewCollectionsClient(httpClient *internalhttp.Client) *CollectionsClient {
	return &CollectionsClient{
		httpClient: httpClient,
	}
}

// Get implements psapi.V3CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, collectionID string) (*psapi.V3Collection, error) {
	path := "/collection/" + collectionID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	var collection psapi.V3Collection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}

	return &collection, nil
}

// KeyImage implements psapi.V3CollectionsClient.KeyImage.
func (c *CollectionsClient) KeyImage(ctx context.Context, collectionID string) (*psapi.V3KeyImage, error) {
	path := "/collection/" + collectionID + "/key_image"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection key image: %w", err)
	}

	var keyImage psapi.V3KeyImage

	err = json.Unmarshal(resp.Body, &keyImage)
	if err != nil {
		return nil, fmt.Errorf("parsing key image: %w", err)
	}

	return &keyImage, nil
}
