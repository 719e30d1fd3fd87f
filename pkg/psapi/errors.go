package psapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents one entry of the error list reported by the API.
type APIError struct {
	Title  string `json:"title"            yaml:"title"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Title
	}

	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// ResponseError represents a failed API call. Location is the request method
// and URL; Errors holds the server's reported error list, which is empty for
// 404 responses and for bodies that could not be parsed.
type ResponseError struct {
	StatusCode int        `json:"status_code"`
	Status     string     `json:"status"`
	Location   string     `json:"location"`
	Errors     []APIError `json:"errors,omitempty"`
}

// Error implements the error interface. Server-reported titles are joined
// with " | " into one display string; without titles the HTTP status text is
// used instead.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s", e.Location, e.Status)
	}

	return fmt.Sprintf("%s: %s", e.Location, e.JoinedTitles())
}

// JoinedTitles returns all present error titles joined with " | ".
func (e *ResponseError) JoinedTitles() string {
	titles := make([]string, 0, len(e.Errors))

	for _, apiErr := range e.Errors {
		if apiErr.Title != "" {
			titles = append(titles, apiErr.Title)
		}
	}

	return strings.Join(titles, " | ")
}

// FirstError returns the first reported error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Static errors for err113 compliance.
var (
	ErrNotAuthenticated  = errors.New("not authenticated: call Login first")
	ErrTwoFactorRequired = errors.New("two-factor verification required")
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrEndpointRequired  = errors.New("API endpoint is required")
	ErrConfigRequired    = errors.New("config is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordRequired  = errors.New("password is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthenticated checks if the error reports a missing or rejected session.
func IsUnauthenticated(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == http.StatusUnauthorized
	}

	return false
}

// ParseResponseError parses the API's error envelope from JSON.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}
