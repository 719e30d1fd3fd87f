package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for uploads and downloads.
	ExtendedHTTPTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless a caller opts in via the
// pipeline's WithRetryConfig option.
const (
	// DefaultRetryWaitMin is the minimum wait time between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API base paths and header names.
const (
	// BasePathV4 is the path prefix for the v4 namespace.
	BasePathV4 = "/psapi/v4.0"

	// BasePathV3 is the path prefix for the v3 namespace.
	BasePathV3 = "/psapi/v3"

	// HeaderAuthToken carries the session token on authenticated calls.
	HeaderAuthToken = "X-PS-Auth-Token"

	// HeaderAPIKey carries the client API key on every call.
	HeaderAPIKey = "X-PS-API-Key"

	// ContentTypeJSON is the default request content type.
	ContentTypeJSON = "application/json"

	// ContentTypeForm is the content type of the login request.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10

	// StandardPageSize is the common page size for API responses.
	StandardPageSize = 50

	// DemoDisplayLimit limits items shown in examples.
	DemoDisplayLimit = 3
)

// Output formatting.
const (
	// JSONIndentSize is the indent width for JSON and YAML output.
	JSONIndentSize = 2

	// StringTruncationLimit is used when truncating strings for display.
	StringTruncationLimit = 40

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)
