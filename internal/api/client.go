package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docdeck/docdeck/internal/catalog"
)

// Client talks to the remote document store. All calls are synchronous;
// callers decide how to suspend on them (the TUI wraps them in commands).
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client for the store rooted at baseURL
// (e.g. http://localhost:5000).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// List fetches the documents matching one consistent snapshot of the
// filter vector. Sentinel axes are omitted from the request entirely.
func (c *Client) List(ctx context.Context, f catalog.Filter, page, limit int) (*ListResult, error) {
	params := f.Params()
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var result ListResult
	if err := c.get(ctx, "/api/documents", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single record with all extended fields.
func (c *Client) Get(ctx context.Context, id string) (*catalog.Document, error) {
	var doc catalog.Document
	if err := c.get(ctx, "/api/documents/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upload submits exactly one file to the ingestion endpoint and returns
// the server-reported record summary.
func (c *Client) Upload(ctx context.Context, path string) (*catalog.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/documents/upload", nil, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var doc catalog.Document
	if err := c.do(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a record from the remote store.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// SetStarred sends the new flag value. The caller applies it locally only
// after this returns without error.
func (c *Client) SetStarred(ctx context.Context, id string, starred bool) error {
	return c.put(ctx, id, starredUpdate{Starred: starred})
}

// SetStatus updates a record's status to one of the closed set.
func (c *Client) SetStatus(ctx context.Context, id, status string) error {
	return c.put(ctx, id, statusUpdate{Status: status})
}

// SetTags replaces a record's tag set.
func (c *Client) SetTags(ctx context.Context, id string, tags []string) error {
	return c.put(ctx, id, tagsUpdate{Tags: tags})
}

// Semantic runs the one-shot natural-language search. It is independent of
// the filter vector pipeline: unfiltered, not debounced, and its results
// never enter the Document Store.
func (c *Client) Semantic(ctx context.Context, query string) ([]SemanticResult, error) {
	payload, err := json.Marshal(semanticQuery{Query: query})
	if err != nil {
		return nil, fmt.Errorf("marshal semantic query: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/search/semantic", nil, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp semanticResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Stats fetches the catalog-wide counters.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.get(ctx, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health pings the store.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil, nil)
}

func (c *Client) put(ctx context.Context, id string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/api/documents/"+url.PathEscape(id), nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do executes the request and decodes the response into out (when non-nil).
// Non-2xx replies become a *RequestError carrying the server's error body
// verbatim; everything else is a transport failure.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("document store request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{Status: resp.StatusCode}
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			reqErr.Message = body.Error
		}
		return reqErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
