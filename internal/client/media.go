package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// MediaClient implements psapi.MediaClient.
type MediaClient struct {
	httpClient *internalhttp.Client
}

// NewMediaClient creates a new media client.
func NewMediaClient(httpClient *internalhttp.Client) *MediaClient {
	return &MediaClient{
		httpClient: httpClient,
	}
}

// Get implements psapi.MediaClient.Get.
func (c *MediaClient) Get(ctx context.Context, mediaID string) (*psapi.Media, error) {
	path := "/media/" + mediaID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting media: %w", err)
	}

	var media psapi.Media

	err = json.Unmarshal(resp.Body, &media)
	if err != nil {
		return nil, fmt.Errorf("parsing media: %w", err)
	}

	return &media, nil
}

// Update implements psapi.MediaClient.Update.
func (c *MediaClient) Update(ctx context.Context, mediaID string, request *psapi.MediaUpdateRequest) (*psapi.Media, error) {
	path := "/media/" + mediaID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating media: %w", err)
	}

	var media psapi.Media

	err = json.Unmarshal(resp.Body, &media)
	if err != nil {
		return nil, fmt.Errorf("parsing media response: %w", err)
	}

	return &media, nil
}

// Delete implements psapi.MediaClient.Delete.
func (c *MediaClient) Delete(ctx context.Context, mediaID string) error {
	path := "/media/" + mediaID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting media: %w", err)
	}

	return nil
}

// Download implements psapi.MediaClient.Download. The response body is the
// file content; it travels through the same pipeline as JSON responses and
// reaches the caller byte for byte.
func (c *MediaClient) Download(ctx context.Context, mediaID string) ([]byte, error) {
	path := "/media/" + mediaID + "/download"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading media: %w", err)
	}

	return resp.Body, nil
}

// Upload implements psapi.MediaClient.Upload. The file is sent as one part
// of a multipart form alongside the target gallery id.
func (c *MediaClient) Upload(ctx context.Context, galleryID, fileName string, bits []byte) (*psapi.Media, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	err := writer.WriteField("gallery_id", galleryID)
	if err != nil {
		return nil, fmt.Errorf("writing gallery field: %w", err)
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	_, err = part.Write(bits)
	if err != nil {
		return nil, fmt.Errorf("writing file to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	resp, err := c.httpClient.PostRaw(ctx, "/media", buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return nil, fmt.Errorf("uploading media: %w", err)
	}

	var media psapi.Media

	err = json.Unmarshal(resp.Body, &media)
	if err != nil {
		return nil, fmt.Errorf("parsing media response: %w", err)
	}

	return &media, nil
}

// GetMetadata implements psapi.MediaClient.GetMetadata.
func (c *MediaClient) GetMetadata(ctx context.Context, mediaID string) (*psapi.MediaMetadata, error) {
	path := "/media/" + mediaID + "/metadata"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting media metadata: %w", err)
	}

	var metadata psapi.MediaMetadata

	err = json.Unmarshal(resp.Body, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing media metadata: %w", err)
	}

	return &metadata, nil
}

// UpdateMetadata implements psapi.MediaClient.UpdateMetadata.
func (c *MediaClient) UpdateMetadata(ctx context.Context, mediaID string, request *psapi.MediaMetadataUpdateRequest) (*psapi.MediaMetadata, error) {
	path := "/media/" + mediaID + "/metadata"

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating media metadata: %w", err)
	}

	var metadata psapi.MediaMetadata

	err = json.Unmarshal(resp.Body, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing media metadata response: %w", err)
	}

	return &metadata, nil
}

// Move implements psapi.MediaClient.Move.
func (c *MediaClient) Move(ctx context.Context, mediaID, galleryID string) (*psapi.Media, error) {
	path := "/media/" + mediaID + "/move"

	body := map[string]string{"gallery_id": galleryID}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("moving media: %w", err)
	}

	var media psapi.Media

	err = json.Unmarshal(resp.Body, &media)
	if err != nil {
		return nil, fmt.Errorf("parsing media response: %w", err)
	}

	return &media, nil
}
