// Package clientv3 implements the v3 API client. It reuses the shared
// request pipeline with the v3 base path and the data-envelope unwrap
// strategy; the resource clients never see the envelope.
package clientv3

import (
	"net/url"

	"github.com/skylight-io/psapi-client/internal/auth"
	"github.com/skylight-io/psapi-client/internal/constants"
	"github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// Client implements the psapi.V3Client interface.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	baseURL    string
	logger     psapi.Logger

	// Resource clients
	auth        psapi.V3AuthClient
	mem         psapi.MemClient
	collections psapi.V3CollectionsClient
	galleries   psapi.V3GalleriesClient
	images      psapi.V3ImagesClient
	search      psapi.SearchClient
}

// createHTTPClientOptions builds HTTP client options from config. The unwrap
// strategy is fixed to the data envelope regardless of config.
func createHTTPClientOptions(config *psapi.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithUnwrap(http.UnwrapDataEnvelope),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new v3 API client.
func New(config *psapi.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, psapi.ErrEndpointRequired
	}

	if config.APIKey == "" {
		return nil, psapi.ErrAPIKeyRequired
	}

	session := auth.NewSession()
	if config.AuthToken != "" {
		session.Set(config.AuthToken, config.OrgID, false)
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, constants.BasePathV3, config.APIKey, session, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		session:    session,
		baseURL:    config.Endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Session returns the session holder for this client.
func (c *Client) Session() *auth.Session {
	return c.session
}

// Auth implements psapi.V3Client.Auth.
func (c *Client) Auth() psapi.V3AuthClient {
	return c.auth
}

// Mem implements psapi.V3Client.Mem.
func (c *Client) Mem() psapi.MemClient {
	return c.mem
}

// Collections implements psapi.V3Client.Collections.
func (c *Client) Collections() psapi.V3CollectionsClient {
	return c.collections
}

// Galleries implements psapi.V3Client.Galleries.
func (c *Client) Galleries() psapi.V3GalleriesClient {
	return c.galleries
}

// Images implements psapi.V3Client.Images.
func (c *Client) Images() psapi.V3ImagesClient {
	return c.images
}

// Search implements psapi.V3Client.Search.
func (c *Client) Search() psapi.SearchClient {
	return c.search
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient, c.session)
	c.mem = NewMemClient(c.httpClient)
	c.collections = NewCollectionsClient(c.httpClient)
	c.galleries = NewGalleriesClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
}

// queryValues converts optional query params to url.Values.
func queryValues(params *psapi.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}

// loggerAdapter adapts psapi.Logger to http.Logger.
type loggerAdapter struct {
	logger psapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
