package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// GalleriesClient implements psapi.GalleriesClient.
type GalleriesClient struct {
	httpClient *internalhttp.Client
}

// NewGalleriesClient creates a new galleries client.
func NewGalleriesClient(httpClient *internalhttp.Client) *GalleriesClient {
	return &GalleriesClient{
		httpClient: httpClient,
	}
}

// List implements psapi.GalleriesClient.List.
func (c *GalleriesClient) List(ctx context.Context, params *psapi.QueryParams) (*psapi.GalleryList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/galleries", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing galleries: %w", err)
	}

	var list psapi.GalleryList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing galleries list: %w", err)
	}

	return &list, nil
}

// Get implements psapi.GalleriesClient.Get.
func (c *GalleriesClient) Get(ctx context.Context, galleryID string) (*psapi.Gallery, error) {
	path := "/galleries/" + galleryID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting gallery: %w", err)
	}

	var gallery psapi.Gallery

	err = json.Unmarshal(resp.Body, &gallery)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery: %w", err)
	}

	return &gallery, nil
}

// Create implements psapi.GalleriesClient.Create.
func (c *GalleriesClient) Create(ctx context.Context, request *psapi.GalleryCreateRequest) (*psapi.Gallery, error) {
	resp, err := c.httpClient.Post(ctx, "/galleries", request)
	if err != nil {
		return nil, fmt.Errorf("creating gallery: %w", err)
	}

	var gallery psapi.Gallery

	err = json.Unmarshal(resp.Body, &gallery)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery response: %w", err)
	}

	return &gallery, nil
}

// Update implements psapi.GalleriesClient.Update.
func (c *GalleriesClient) Update(ctx context.Context, galleryID string, request *psapi.GalleryUpdateRequest) (*psapi.Gallery, error) {
	path := "/galleries/" + galleryID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating gallery: %w", err)
	}

	var gallery psapi.Gallery

	err = json.Unmarshal(resp.Body, &gallery)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery response: %w", err)
	}

	return &gallery, nil
}

// Delete implements psapi.GalleriesClient.Delete.
func (c *GalleriesClient) Delete(ctx context.Context, galleryID string) error {
	path := "/galleries/" + galleryID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting gallery: %w", err)
	}

	return nil
}

// ListMedia implements psapi.GalleriesClient.ListMedia.
func (c *GalleriesClient) ListMedia(ctx context.Context, galleryID string, params *psapi.QueryParams) (*psapi.MediaList, error) {
	path := "/galleries/" + galleryID + "/media"

	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing gallery media: %w", err)
	}

	var list psapi.MediaList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery media list: %w", err)
	}

	return &list, nil
}

// AddMedia implements psapi.GalleriesClient.AddMedia.
func (c *GalleriesClient) AddMedia(ctx context.Context, galleryID, mediaID string) error {
	path := "/galleries/" + galleryID + "/media"

	body := map[string]string{"media_id": mediaID}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("adding media to gallery: %w", err)
	}

	return nil
}

// RemoveMedia implements psapi.GalleriesClient.RemoveMedia.
func (c *GalleriesClient) RemoveMedia(ctx context.Context, galleryID, mediaID string) error {
	path := "/galleries/" + galleryID + "/media/" + mediaID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing media from gallery: %w", err)
	}

	return nil
}

// SetKeyImage implements psapi.GalleriesClient.SetKeyImage.
func (c *GalleriesClient) SetKeyImage(ctx context.Context, galleryID, mediaID string) (*psapi.Gallery, error) {
	path := "/galleries/" + galleryID + "/key-image"

	body := map[string]string{"media_id": mediaID}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("setting gallery key image: %w", err)
	}

	var gallery psapi.Gallery

	err = json.Unmarshal(resp.Body, &gallery)
	if err != nil {
		return nil, fmt.Errorf("parsing gallery response: %w", err)
	}

	return &gallery, nil
}
