package clientv3

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// ImagesClient implements psapi.V3ImagesClient.
type ImagesClient struct {
	httpClient *internalhttp.Client
}

// NewImagesClient creates a new v3 images client.
func NewImagesClient(httpClient *internalhttp.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

// Get implements psapi.V3ImagesClient.Get.
func (c *ImagesClient) Get(ctx context.Context, imageID string) (*psapi.V3Image, error) {
	path := "/image/" + imageID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting image: %w", err)
	}

	var image psapi.V3Image

	err = json.Unmarshal(resp.Body, &image)
	if err != nil {
		return nil, fmt.Errorf("parsing image: %w", err)
	}

	return &image, nil
}

// ListGalleries implements psapi.V3ImagesClient.ListGalleries. It reports the
// galleries containing the image.
func (c *ImagesClient) ListGalleries(ctx context.Context, imageID string, params *psapi.QueryParams) ([]psapi.V3ImageLink, error) {
	path := "/image/" + imageID + "/galleries"

	resp, err := c.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing image galleries: %w", err)
	}

	var links []psapi.V3ImageLink

	err = json.Unmarshal(resp.Body, &links)
	if err != nil {
		return nil, fmt.Errorf("parsing image galleries: %w", err)
	}

	return links, nil
}

// Download implements psapi.V3ImagesClient.Download. File content is not
// JSON, so the envelope unwrapper passes the bytes through unchanged.
func (c *ImagesClient) Download(ctx context.Context, imageID string) ([]byte, error) {
	path := "/image/" + imageID + "/download"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading image: %w", err)
	}

	return resp.Body, nil
}
