// Package http implements the request pipeline shared by every endpoint
// call: it checks for a session token, builds the URL, attaches the
// PhotoShelter headers, performs the call, and classifies the outcome.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/skylight-io/psapi-client/internal/constants"
	"github.com/skylight-io/psapi-client/pkg/psapi"
)

// TokenSource exposes the current session token to the pipeline.
type TokenSource interface {
	Token() (string, error)
}

// Logger interface for HTTP-layer logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request. Exactly one of Body, Form, or RawBody
// may be set. Body is marshaled as JSON; Form is sent URL-encoded; RawBody
// is sent verbatim with RawContentType.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Form    url.Values
	RawBody []byte
	// RawContentType is the Content-Type sent with RawBody.
	RawContentType string
	Headers        map[string]string
	// Unauthenticated skips the session-token precheck and the auth-token
	// header. Only the login operations set this.
	Unauthenticated bool
}

// Response represents an API response. On success Body holds the unwrapped
// payload; on failure it holds the raw error body.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// UnwrapFunc is the version-specific strategy applied to a successful
// response body before it is handed to the caller.
type UnwrapFunc func(body []byte) []byte

// UnwrapRaw returns the body unchanged (v4 behavior). Non-JSON payloads such
// as downloads pass through byte for byte.
func UnwrapRaw(body []byte) []byte {
	return body
}

// UnwrapDataEnvelope returns the nested data field of the parsed body (v3
// behavior), discarding envelope metadata. If the body is not JSON or has no
// data field, the raw bytes are returned instead so binary payloads survive
// the same call path.
func UnwrapDataEnvelope(body []byte) []byte {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Data == nil {
		return body
	}

	return envelope.Data
}

// Client is the request pipeline, parameterized by base path and unwrap
// strategy so that one implementation serves both API namespaces.
type Client struct {
	baseURL   string
	basePath  string
	apiKey    string
	tokens    TokenSource
	client    *retryablehttp.Client
	unwrap    UnwrapFunc
	userAgent string
	logger    Logger
	debug     bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to retries for transient failures. Retries are
// disabled by default: retry policy belongs to the caller, not this client.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.client.RetryMax = retryMax
		c.client.RetryWaitMin = waitMin
		c.client.RetryWaitMax = waitMax
	}
}

// WithUnwrap sets the response unwrap strategy.
func WithUnwrap(unwrap UnwrapFunc) Option {
	return func(c *Client) {
		c.unwrap = unwrap
	}
}

// WithHTTPTimeout sets the underlying transport timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new pipeline client. tokens may be nil, in which case
// only unauthenticated requests succeed.
func NewClient(baseURL, basePath, apiKey string, tokens TokenSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand the final response back even when the retry budget is spent, so
	// the error classifier sees the real status and body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:   baseURL,
		basePath:  basePath,
		apiKey:    apiKey,
		tokens:    tokens,
		client:    retryClient,
		unwrap:    UnwrapRaw,
		userAgent: "psapi-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs an API request. It fails with psapi.ErrNotAuthenticated before
// any network I/O when no session token exists and the request is not marked
// unauthenticated. Transport errors propagate to the caller; HTTP failures
// are classified into a *psapi.ResponseError, returned alongside the
// response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	token := ""

	if !req.Unauthenticated {
		if c.tokens == nil {
			return nil, psapi.ErrNotAuthenticated
		}

		var err error

		token, err = c.tokens.Token()
		if err != nil {
			return nil, err
		}
	}

	requestURL := c.baseURL + c.basePath + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if token != "" {
		httpReq.Header.Set(constants.HeaderAuthToken, token)
	}

	// Caller-supplied headers override the defaults.
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		// Transport-level failure: no classification, no recovery.
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    requestURL,
			"bytes":  len(rawBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       rawBody,
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, classifyError(method, requestURL, resp)
	}

	resp.Body = c.unwrap(rawBody)

	return resp, nil
}

// encodeBody serializes the request body and picks the content type.
func encodeBody(req *Request) (io.Reader, string, error) {
	switch {
	case req.RawBody != nil:
		return bytes.NewReader(req.RawBody), req.RawContentType, nil

	case req.Form != nil:
		return bytes.NewBufferString(req.Form.Encode()), constants.ContentTypeForm, nil

	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), constants.ContentTypeJSON, nil

	default:
		return nil, constants.ContentTypeJSON, nil
	}
}

// classifyError turns a failure response into a single descriptive error.
// 404 is matched by numeric status and never reads the body. Any other
// failure parses the errors list; an unparseable body falls back to the HTTP
// status text rather than surfacing the parse error.
func classifyError(method, requestURL string, resp *Response) error {
	location := method + " " + requestURL

	statusText := http.StatusText(resp.StatusCode)
	if statusText == "" {
		statusText = resp.Status
	}

	if resp.StatusCode == http.StatusNotFound {
		return &psapi.ResponseError{
			StatusCode: resp.StatusCode,
			Status:     statusText,
			Location:   location,
		}
	}

	var envelope struct {
		Errors []psapi.APIError `json:"errors"`
	}

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil || len(envelope.Errors) == 0 {
		return &psapi.ResponseError{
			StatusCode: resp.StatusCode,
			Status:     statusText,
			Location:   location,
		}
	}

	return &psapi.ResponseError{
		StatusCode: resp.StatusCode,
		Status:     statusText,
		Location:   location,
		Errors:     envelope.Errors,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostForm performs a POST request with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Form: form})
}

// PostRaw performs a POST request with a raw body and explicit content type.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, RawBody: body, RawContentType: contentType})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
