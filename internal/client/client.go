// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package client is the typed HTTP client of the mock data API.

It is the only network boundary of the reader front end. The catalog store,
the detail view and the reader session depend on narrow interfaces that this
client satisfies, so tests substitute in-memory fakes.

Errors:

  - Non-2xx responses become a [*StatusError] carrying the server's message.
  - Transport and decoding failures are wrapped with the operation name.
*/
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/taibuivan/yomira-reader/internal/core/chapter"
	"github.com/taibuivan/yomira-reader/internal/core/content"
	"github.com/taibuivan/yomira-reader/internal/platform/constants"
)

// # Errors

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 [StatusError].
func IsNotFound(err error) bool {
	var statusError *StatusError
	return errors.As(err, &statusError) && statusError.StatusCode == http.StatusNotFound
}

// # Query & Results

// Query selects one window of the catalog.
type Query struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// Listing is one window of the catalog plus its pagination metadata.
type Listing struct {
	Items   []*content.Item `json:"data"`
	HasMore bool            `json:"hasMore"`
	Total   int             `json:"total"`
}

// # Client

// Client talks to the mock data API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New constructs a [Client] for baseURL (e.g. http://localhost:8080/api).
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListContent fetches one window of the filtered catalog.
func (c *Client) ListContent(ctx context.Context, query Query) (*Listing, error) {
	values := url.Values{}
	if query.Category != "" && query.Category != constants.CategoryAll {
		values.Set(content.ParamContentType, query.Category)
	}
	if query.Search != "" {
		values.Set(content.ParamSearch, query.Search)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		values.Set("offset", strconv.Itoa(query.Offset))
	}

	path := "/content"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var listing Listing
	if err := c.get(ctx, "list content", path, &listing); err != nil {
		return nil, err
	}
	if listing.Items == nil {
		listing.Items = []*content.Item{}
	}
	return &listing, nil
}

// GetContent fetches a single catalog item.
func (c *Client) GetContent(ctx context.Context, id string) (*content.Item, error) {
	var envelope struct {
		Data *content.Item `json:"data"`
	}
	if err := c.get(ctx, "get content", "/content/"+url.PathEscape(id), &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("get content: empty payload")
	}
	return envelope.Data, nil
}

// ListChapters fetches the chapter roster of a content item.
func (c *Client) ListChapters(ctx context.Context, contentID string) ([]*chapter.Chapter, error) {
	var envelope struct {
		Data []*chapter.Chapter `json:"data"`
	}
	if err := c.get(ctx, "list chapters", "/chapters/"+url.PathEscape(contentID), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ListPages fetches the pages of a chapter.
func (c *Client) ListPages(ctx context.Context, chapterID string) ([]*chapter.Page, error) {
	var envelope struct {
		Data chapter.PageList `json:"data"`
	}
	if err := c.get(ctx, "list pages", "/chapter/"+url.PathEscape(chapterID)+"/pages", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Pages, nil
}

// # Transport

// get performs a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	started := time.Now()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer response.Body.Close()

	c.logger.DebugContext(ctx, "api_request_completed",
		slog.String("op", op),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%s: %w", op, decodeStatusError(response))
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeStatusError reads the {error, code} envelope of a failed response.
func decodeStatusError(response *http.Response) *StatusError {
	statusError := &StatusError{StatusCode: response.StatusCode}

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	body, _ := io.ReadAll(io.LimitReader(response.Body, 64<<10))
	if json.Unmarshal(body, &envelope) == nil {
		statusError.Message = envelope.Error
		statusError.Code = envelope.Code
	}
	return statusError
}
