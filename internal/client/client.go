// Package client is a thin REST client for the review backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/hrevu/internal/core/logging"
	"github.com/colonyops/hrevu/internal/core/review"
)

const (
	pathData     = "/api/data"
	pathComments = "/api/comments"
	pathComplete = "/api/complete"

	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	maxErrorBody = 4 << 10
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// NewComment is the body of a create request. Nil anchors are omitted so the
// backend stores a file-level or global comment.
type NewComment struct {
	File *string `json:"file,omitempty"`
	Line *int    `json:"line,omitempty"`
	Text string  `json:"text"`
}

type updateComment struct {
	Text string `json:"text"`
}

// Completion is the backend's answer to a completion request.
type Completion struct {
	Message      string `json:"message,omitempty"`
	CommentCount int    `json:"comment_count"`
}

// Client talks to the review backend over HTTP.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger
	newID   func() string
}

// New creates a client for the backend at baseURL. A zero timeout disables
// the request deadline.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse server url: %q needs a scheme and host", baseURL)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     logging.Component("client"),
		newID:   uuid.NewString,
	}, nil
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Review fetches the review's files and comments.
func (c *Client) Review(ctx context.Context) (review.Review, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, pathData, nil, &raw); err != nil {
		return review.Review{}, err
	}
	return review.Decode(raw)
}

// CreateComment stores a new comment and returns it as saved by the backend.
func (c *Client) CreateComment(ctx context.Context, in NewComment) (review.Comment, error) {
	var out review.Comment
	if err := c.do(ctx, http.MethodPost, pathComments, in, &out); err != nil {
		return review.Comment{}, err
	}
	return review.NormalizeComment(out), nil
}

// UpdateComment replaces a comment's text.
func (c *Client) UpdateComment(ctx context.Context, id, text string) (review.Comment, error) {
	var out review.Comment
	if err := c.do(ctx, http.MethodPut, commentPath(id), updateComment{Text: text}, &out); err != nil {
		return review.Comment{}, err
	}
	return review.NormalizeComment(out), nil
}

// DeleteComment removes a comment. Any 2xx answer counts as success.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, commentPath(id), nil, nil)
}

// Complete marks the review as finished.
func (c *Client) Complete(ctx context.Context) (Completion, error) {
	var out Completion
	if err := c.do(ctx, http.MethodPost, pathComplete, nil, &out); err != nil {
		return Completion{}, err
	}
	return out, nil
}

func commentPath(id string) string {
	return pathComments + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := c.newID()
	ctx = logging.WithRequest(ctx, logging.Request{ID: requestID, Method: method, Path: path})

	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Ctx(ctx).Err(err).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Ctx(ctx).Err(err).Msg("close response body")
		}
	}()

	c.log.Debug().Ctx(ctx).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
