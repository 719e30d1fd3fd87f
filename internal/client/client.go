// Package client implements the v4 API client.
package client

import (
	"github.com/skylight-io/psapi-client/internal/auth"
	"github.com/skylight-io/psapi-client/internal/constants"
	"github.com/skylight-io/psapi-client/internal/http"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// Client implements the psapi.Client interface.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	baseURL    string
	logger     psapi.Logger

	// Resource clients
	auth          psapi.AuthClient
	collections   psapi.CollectionsClient
	galleries     psapi.GalleriesClient
	media         psapi.MediaClient
	users         psapi.UsersClient
	organizations psapi.OrganizationsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *psapi.Config) []http.Option {
	var httpOpts []http.Option

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

// New creates a new v4 API client. The session starts empty unless the
// config carries a previously issued token.
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
	httpClient := http.NewClient(config.Endpoint, constants.BasePathV4, config.APIKey, session, httpOpts...)

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

// Auth implements psapi.Client.Auth.
func (c *Client) Auth() psapi.AuthClient {
	return c.auth
}

// Collections implements psapi.Client.Collections.
func (c *Client) Collections() psapi.CollectionsClient {
	return c.collections
}

// Galleries implements psapi.Client.Galleries.
func (c *Client) Galleries() psapi.GalleriesClient {
	return c.galleries
}

// Media implements psapi.Client.Media.
func (c *Client) Media() psapi.MediaClient {
	return c.media
}

// Users implements psapi.Client.Users.
func (c *Client) Users() psapi.UsersClient {
	return c.users
}

// Organizations implements psapi.Client.Organizations.
func (c *Client) Organizations() psapi.OrganizationsClient {
	return c.organizations
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.httpClient, c.session)
	c.collections = NewCollectionsClient(c.httpClient)
	c.galleries = NewGalleriesClient(c.httpClient)
	c.media = NewMediaClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
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
