// Package psclient provides the main entry point for creating PhotoShelter API clients
package psclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/skylight-io/psapi-client/internal/client"
	"github.com/skylight-io/psapi-client/internal/clientv3"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// New creates a new v4 API client. When the config carries an email and
// password, New logs in before returning, so the client comes back with a
// live session.
func New(ctx context.Context, config *psapi.Config) (psapi.Client, error) {
	if config == nil {
		return nil, psapi.ErrConfigRequired
	}

	config.Endpoint = normalizeEndpoint(config.Endpoint)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	if needsLogin(config) {
		_, err = apiClient.Auth().Login(ctx, config.Email, config.Password, config.OrgID)
		if err != nil {
			return nil, fmt.Errorf("logging in during construction: %w", err)
		}
	}

	return apiClient, nil
}

// NewV3 creates a new v3 API client. The v3 namespace shares the login
// semantics but wraps every response in a data envelope, which the client
// strips before payloads reach the caller.
func NewV3(ctx context.Context, config *psapi.Config) (psapi.V3Client, error) {
	if config == nil {
		return nil, psapi.ErrConfigRequired
	}

	config.Endpoint = normalizeEndpoint(config.Endpoint)

	apiClient, err := clientv3.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating v3 client: %w", err)
	}

	if needsLogin(config) {
		_, err = apiClient.Auth().Login(ctx, config.Email, config.Password, config.OrgID)
		if err != nil {
			return nil, fmt.Errorf("logging in during construction: %w", err)
		}
	}

	return apiClient, nil
}

// NewWithToken creates a new v4 client from an endpoint, API key, and a
// previously issued session token.
func NewWithToken(ctx context.Context, endpoint, apiKey, token string) (psapi.Client, error) {
	return New(ctx, &psapi.Config{
		Endpoint:  endpoint,
		APIKey:    apiKey,
		AuthToken: token,
	})
}

// NewWithPassword creates a new v4 client that logs in with email and
// password during construction.
func NewWithPassword(ctx context.Context, endpoint, apiKey, email, password string) (psapi.Client, error) {
	return New(ctx, &psapi.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Email:    email,
		Password: password,
	})
}

// needsLogin checks if the config asks for a login during construction.
func needsLogin(config *psapi.Config) bool {
	return config.AuthToken == "" && config.Email != "" && config.Password != ""
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
