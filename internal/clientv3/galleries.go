package clientv3

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// GalleriesClient implements psapi.V3GalleriesClient.
type GalleriesClient struct {
	httpClient *internalhttp.Client
}

// NewGalleriesClient creates a new v3 galleries client.
func NewGalleriesClient(httpClient *internalhttp.Client) *GalleriesClient {
	return &GalleriesClient{
		httpClient: httpClient,
	}
}

// Get implements psapi.V3GalleriesClient.Get.
func (c *GalleriesClient) Get(ctx context.Context, galleryID string) (*psapi.V3Gallery, error) {
	path := "/gallery/" + galleryID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting gallery: %w", err)
	}

	var gallery psapi.V3Gallery

	err = json.Unmarshal(resp.Body, &gallery)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery: %w", err)
	}

	return &gallery, nil
}

// ListImages implements psapi.V3GalleriesClient.ListImages.
func (c *GalleriesClient) ListImages(ctx context.Context, galleryID string, params *psapi.QueryParams) ([]psapi.V3Image, error) {
	path := "/gallery/" + galleryID + "/images"

	resp, err := c.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("listing gallery images: %w", err)
	}

	var images []psapi.V3Image

	err = json.Unmarshal(resp.Body, &images)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery images: %w", err)
	}

	return images, nil
}

// KeyImage implements psapi.V3GalleriesClient.KeyImage.
func (c *GalleriesClient) KeyImage(ctx context.Context, galleryID string) (*psapi.V3KeyImage, error) {
	path := "/gallery/" + galleryID + "/key_image"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting gallery key image: %w", err)
	}

	var keyImage psapi.V3KeyImage

	err = json.Unmarshal(resp.Body, &keyImage)
	if err != nil {
		return nil, fmt.Errorf("parsing key image: %w", err)
	}

	return &keyImage, nil
}
