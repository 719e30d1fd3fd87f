package clientv3

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// SearchClient implements psapi.SearchClient.
type SearchClient struct {
	httpClient *internalhttp.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *internalhttp.Client) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
	}
}

// Images implements psapi.SearchClient.Images. The terms value travels as a
// query parameter and is percent-encoded at request-build time, so terms like
// "black&white" arrive intact.
func (c *SearchClient) Images(ctx context.Context, terms string, params *psapi.QueryParams) ([]psapi.V3SearchResult, error) {
	query := queryValues(params)
	if query == nil {
		query = url.Values{}
	}

	query.Set("terms", terms)

	resp, err := c.httpClient.Get(ctx, "/search/image", query)
	if err != nil {
		return nil, fmt.Errorf("searching images: %w", err)
	}

	var results []psapi.V3SearchResult

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return results, nil
}

// Galleries implements psapi.SearchClient.Galleries.
func (c *SearchClient) Galleries(ctx context.Context, terms string, params *psapi.QueryParams) ([]psapi.V3SearchResult, error) {
	query := queryValues(params)
	if query == nil {
		query = url.Values{}
	}

	query.Set("terms", terms)

	resp, err := c.httpClient.Get(ctx, "/search/gallery", query)
	if err != nil {
		return nil, fmt.Errorf("searching galleries: %w", err)
	}

	var results []psapi.V3SearchResult

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	return results, nil
}
