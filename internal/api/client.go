package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/logging"
	"github.com/bytestashy/bytestashy/internal/models"
)

// Service is the remote snippet API surface consumed by the command layer.
//
// Login and CreateAPIKey operate before a credential exists and therefore do
// not require an API key on the client; all other operations do.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	CreateAPIKey(ctx context.Context, token, name string) (string, error)
	List(ctx context.Context) ([]models.Snippet, error)
	Get(ctx context.Context, id int) (*models.Snippet, error)
	Create(ctx context.Context, req models.UploadRequest) (*models.Snippet, error)
	Update(ctx context.Context, id int, req models.UploadRequest) (*models.Snippet, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string, opts SearchOptions) ([]models.Snippet, error)
}

var _ Service = (*Client)(nil)

// Client talks JSON (and multipart for uploads) to one ByteStash server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a Client for the given endpoint. apiKey may be empty for
// the login exchange. The endpoint must use the http or https scheme; a
// trailing slash is trimmed.
func NewClient(endpoint, apiKey string, log logging.Logger) (*Client, error) {
	return NewClientWithHTTPClient(endpoint, apiKey, &http.Client{}, log)
}

// NewClientWithHTTPClient is like NewClient but with an injected http.Client,
// allowing tests to point the Client at an httptest server.
func NewClientWithHTTPClient(endpoint, apiKey string, hc *http.Client, log logging.Logger) (*Client, error) {
	base, err := NormalizeEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: base, apiKey: apiKey, http: hc, log: log}, nil
}

// NormalizeEndpoint validates a server URL and strips any trailing slash.
// Anything without an http or https scheme is rejected before a request is
// ever built from it.
func NormalizeEndpoint(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", &common.InvalidInputError{Message: fmt.Sprintf("invalid URL %q: %v", endpoint, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &common.InvalidInputError{Message: fmt.Sprintf("invalid URL %q: URL must use http or https scheme", endpoint)}
	}
	if u.Host == "" {
		return "", &common.InvalidInputError{Message: fmt.Sprintf("invalid URL %q: missing host", endpoint)}
	}
	return strings.TrimRight(endpoint, "/"), nil
}

// Endpoint returns the normalized base URL the client was built with.
func (c *Client) Endpoint() string {
	return c.baseURL
}

// send attaches the API key (when present), executes the request, and drains
// the response body. Transport failures are wrapped as plain errors; status
// interpretation is left to the caller.
func (c *Client) send(req *http.Request) (int, []byte, error) {
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	c.log.Debug(req.Context(), "sending request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}
	c.log.Debug(req.Context(), "response received", "status", resp.StatusCode, "bytes", len(body))
	return resp.StatusCode, body, nil
}
