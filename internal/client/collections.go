package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// CollectionsClient implements psapi.CollectionsClient.
type CollectionsClient struct {
	httpClient *internalhttp.Client
}

// NewCollectionsClient creates a new collections client.
func NewCollectionsClient(httpClient *internalhttp.Client) *CollectionsClient {
	return &CollectionsClient{
		httpClient: httpClient,
	}
}

// List implements psapi.CollectionsClient.List.
func (c *CollectionsClient) List(ctx context.Context, params *psapi.QueryParams) (*psapi.CollectionList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/collections", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	var list psapi.CollectionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing collections list: %w", err)
	}

	return &list, nil
}

// Get implements psapi.CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, collectionID string) (*psapi.Collection, error) {
	path := "/collections/" + collectionID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	var collection psapi.Collection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}

	return &collection, nil
}

// Create implements psapi.CollectionsClient.Create.
func (c *CollectionsClient) Create(ctx context.Context, request *psapi.CollectionCreateRequest) (*psapi.Collection, error) {
	resp, err := c.httpClient.Post(ctx, "/collections", request)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	var collection psapi.Collection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &collection, nil
}

// Update implements psapi.CollectionsClient.Update.
func (c *CollectionsClient) Update(ctx context.Context, collectionID string, request *psapi.CollectionUpdateRequest) (*psapi.Collection, error) {
	path := "/collections/" + collectionID

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}

	var collection psapi.Collection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &collection, nil
}

// Delete implements psapi.CollectionsClient.Delete.
func (c *CollectionsClient) Delete(ctx context.Context, collectionID string) error {
	path := "/collections/" + collectionID

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	return nil
}

// Children implements psapi.CollectionsClient.Children.
func (c *CollectionsClient) Children(ctx context.Context, collectionID string, params *psapi.QueryParams) (*psapi.CollectionChildList, error) {
	path := "/collections/" + collectionID + "/children"

	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing collection children: %w", err)
	}

	var list psapi.CollectionChildList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing collection children: %w", err)
	}

	return &list, nil
}

// SetVisibility implements psapi.CollectionsClient.SetVisibility.
func (c *CollectionsClient) SetVisibility(ctx context.Context, collectionID, visibility string) (*psapi.Collection, error) {
	path := "/collections/" + collectionID + "/visibility"

	body := map[string]string{"visibility": visibility}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("setting collection visibility: %w", err)
	}

	var collection psapi.Collection

	err = json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &collection, nil
}
