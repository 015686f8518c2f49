package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/models"
)

// SearchOptions narrows a search request. An empty Sort means server default
// ordering; any other value must be one of the recognized sort keys.
type SearchOptions struct {
	Sort       string
	SearchCode bool
}

var validSorts = map[string]bool{
	"newest":     true,
	"oldest":     true,
	"alpha-asc":  true,
	"alpha-desc": true,
}

// List fetches the full snippet collection. Pagination is a presentation
// concern handled by the caller.
func (c *Client) List(ctx context.Context) ([]models.Snippet, error) {
	raw, err := c.doGet(ctx, "/api/v1/snippets")
	if err != nil {
		return nil, err
	}
	var out []models.Snippet
	if err := decodePayload(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one snippet by id. A 404 surfaces as common.ErrNotFound.
func (c *Client) Get(ctx context.Context, id int) (*models.Snippet, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	raw, err := c.doGet(ctx, fmt.Sprintf("/api/v1/snippets/%d", id))
	if err != nil {
		return nil, err
	}
	var out models.Snippet
	if err := decodePayload(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create uploads a new snippet. All file paths are checked locally before any
// request is sent.
func (c *Client) Create(ctx context.Context, req models.UploadRequest) (*models.Snippet, error) {
	return c.upload(ctx, http.MethodPost, "/api/v1/snippets/push", req)
}

// Update replaces an existing snippet wholesale: the supplied files become
// the snippet's fragments, dropping whatever was there before.
func (c *Client) Update(ctx context.Context, id int, req models.UploadRequest) (*models.Snippet, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return c.upload(ctx, http.MethodPut, fmt.Sprintf("/api/v1/snippets/%d", id), req)
}

// Delete removes a snippet by id. The server answers 200 with the deleted id,
// or 204 with no body; both count as success.
func (c *Client) Delete(ctx context.Context, id int) error {
	if err := validateID(id); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+fmt.Sprintf("/api/v1/snippets/%d", id), nil)
	if err != nil {
		return fmt.Errorf("building delete request: %w", err)
	}
	status, body, err := c.send(req)
	if err != nil {
		return err
	}
	if status == http.StatusNoContent {
		return nil
	}
	_, err = classify(status, body)
	return err
}

// Search queries the server. The query string is percent-encoded; an
// unrecognized sort value is rejected locally before any HTTP call.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]models.Snippet, error) {
	if opts.Sort != "" && !validSorts[opts.Sort] {
		return nil, &common.InvalidInputError{
			Message: fmt.Sprintf("invalid sort %q: expected newest, oldest, alpha-asc or alpha-desc", opts.Sort),
		}
	}

	params := url.Values{}
	params.Set("q", query)
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if opts.SearchCode {
		params.Set("searchCode", "true")
	}

	raw, err := c.doGet(ctx, "/api/v1/snippets/search?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var out []models.Snippet
	if err := decodePayload(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	status, body, err := c.send(req)
	if err != nil {
		return nil, err
	}
	return classify(status, body)
}

func (c *Client) upload(ctx context.Context, method, path string, req models.UploadRequest) (*models.Snippet, error) {
	if err := validateUploadPaths(req.Files); err != nil {
		return nil, err
	}
	form, err := newUploadForm(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, form.body)
	if err != nil {
		form.body.Close()
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", form.contentType)

	status, body, err := c.send(httpReq)
	if err != nil {
		return nil, err
	}
	raw, err := classify(status, body)
	if err != nil {
		return nil, err
	}
	var out models.Snippet
	if err := decodePayload(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func validateID(id int) error {
	if id < 0 {
		return &common.InvalidInputError{Message: fmt.Sprintf("snippet id must be non-negative, got %d", id)}
	}
	return nil
}
