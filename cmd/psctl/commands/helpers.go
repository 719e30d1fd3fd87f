package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/skylight-io/psapi-client/pkg/psapi"
	"github.com/skylight-io/psapi-client/pkg/psclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrEndpointNotConfigured = errors.New("no API endpoint configured (use --endpoint or 'psctl config set endpoint')")
	ErrAPIKeyNotConfigured   = errors.New("no API key configured (use --api-key or 'psctl config set api_key')")
	ErrNotLoggedIn           = errors.New("not logged in, run 'psctl login' first")
	ErrNameRequired          = errors.New("name is required")
	ErrEmailRequired         = errors.New("email is required")
	ErrGalleryRequired       = errors.New("gallery is required (use --gallery)")
	ErrOutputPathRequired    = errors.New("output path is required (use --out)")
)

// CreateClient builds a v4 client from the effective configuration: flags,
// environment, config file, in that order of precedence (viper handles the
// layering). A stored session token is required for everything but login.
func CreateClient(ctx context.Context) (psapi.Client, error) {
	config, err := buildClientConfig()
	if err != nil {
		return nil, err
	}

	if config.AuthToken == "" {
		return nil, ErrNotLoggedIn
	}

	client, err := psclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// CreateV3Client builds a v3 client from the effective configuration.
func CreateV3Client(ctx context.Context) (psapi.V3Client, error) {
	config, err := buildClientConfig()
	if err != nil {
		return nil, err
	}

	if config.AuthToken == "" {
		return nil, ErrNotLoggedIn
	}

	client, err := psclient.NewV3(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating v3 client: %w", err)
	}

	return client, nil
}

// buildClientConfig assembles a psapi.Config from viper and the stored CLI
// config. Flag and environment values win over the config file.
func buildClientConfig() (*psapi.Config, error) {
	stored := loadConfig()

	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		endpoint = stored.Endpoint
	}

	if endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		apiKey = stored.APIKey
	}

	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	token := viper.GetString("token")
	if token == "" {
		token = stored.Token
	}

	return &psapi.Config{
		Endpoint:  endpoint,
		APIKey:    apiKey,
		AuthToken: token,
		OrgID:     stored.OrgID,
		Debug:     viper.GetBool("verbose"),
	}, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// formatBytes renders a byte count for table display.
func formatBytes(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// yesNo renders a boolean for table display.
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
