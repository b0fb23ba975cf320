// Package client talks to the AI Search HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v7"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Aftab073/Ai-search-tool/library/log"
	"github.com/Aftab073/Ai-search-tool/library/search"
)

const (
	searchPath  = "api/search/"
	historyPath = "api/history/"

	defaultTimeout = 30 * time.Second
	// logBodyLimit caps the number of response bytes logged for debugging.
	logBodyLimit = 4096
	// maxBodyBytes caps the response bytes read from the backend.
	maxBodyBytes = 8 << 20

	headerRequestID = "X-Request-Id"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to reach the backend.
func WithHTTPClient(httpcli *http.Client) Option {
	return func(c *Client) {
		if httpcli != nil {
			c.httpcli = httpcli
		}
	}
}

// WithLogger overrides the logger used when no contextual logger is present.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Client calls the search, history and health endpoints of one backend.
type Client struct {
	baseURL *url.URL
	httpcli *http.Client
	timeout time.Duration
	logger  logSDK.Logger
	group   singleflight.Group
}

// New builds a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("api base url cannot be empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api base url %q", trimmed)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", trimmed)
	}

	c := &Client{
		baseURL: u,
		timeout: defaultTimeout,
		logger:  log.Logger.Named("search_client"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.httpcli == nil {
		if c.httpcli, err = gutils.NewHTTPClient(
			gutils.WithHTTPClientTimeout(c.timeout),
		); err != nil {
			return nil, errors.Wrap(err, "new http client")
		}
	}

	return c, nil
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search posts query to /api/search/ and returns the results in server order.
// The query is sent as is, callers validate it.
func (c *Client) Search(ctx context.Context, query string) ([]search.SearchResult, error) {
	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, &APIError{Kind: KindRequest, Err: errors.Wrap(err, "marshal search request")}
	}

	var results []search.SearchResult
	if err := c.do(ctx, http.MethodPost, searchPath, body, &results); err != nil {
		return nil, errors.Wrap(err, "search")
	}

	return results, nil
}

// History returns the server recorded past queries.
// Concurrent calls share one in-flight request.
func (c *Client) History(ctx context.Context) ([]search.HistoryEntry, error) {
	v, err, _ := c.group.Do(historyPath, func() (any, error) {
		var entries []search.HistoryEntry
		if err := c.do(ctx, http.MethodGet, historyPath, nil, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetch history")
	}

	return v.([]search.HistoryEntry), nil
}

// ClearHistory deletes every server recorded query.
func (c *Client) ClearHistory(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, historyPath, nil, nil); err != nil {
		return errors.Wrap(err, "clear history")
	}
	return nil
}

// Health fetches the backend status document served at the root path.
func (c *Client) Health(ctx context.Context) (*search.HealthStatus, error) {
	status := new(search.HealthStatus)
	if err := c.do(ctx, http.MethodGet, "", nil, status); err != nil {
		return nil, errors.Wrap(err, "health check")
	}
	return status, nil
}

type searchRequest struct {
	Query string `json:"query"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// do sends one request and decodes a successful payload into out.
// A nil out discards the body. All failures are *APIError.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	endpoint := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return &APIError{Kind: KindRequest, Err: errors.Wrap(err, "create request")}
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.loggerFor(ctx).With(zap.String("request_id", reqID))

	logger.Debug("outgoing http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	startAt := time.Now()
	resp, err := c.httpcli.Do(req)
	if err != nil {
		return &APIError{Kind: KindNoResponse, Err: errors.Wrapf(err, "send %s %s", method, endpoint)}
	}
	defer resp.Body.Close() // nolint: errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &APIError{Kind: KindNoResponse, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read response body")}
	}

	truncatedBody, truncated := truncateForLog(respBody, logBodyLimit)
	logger.Debug("incoming http response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncatedBody),
		zap.Bool("body_truncated", truncated),
		zap.Duration("cost", time.Since(startAt)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Kind:       KindResponse,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	if msg, ok := reportedError(respBody); ok {
		return &APIError{Kind: KindServerReported, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Kind: KindRequest, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "unmarshal response")}
	}

	return nil
}

// loggerFor prefers the request scoped logger when ctx belongs to a gin request.
// gmw.GetLogger never returns nil, outside gin it would hide the client logger.
func (c *Client) loggerFor(ctx context.Context) logSDK.Logger {
	if ctx == nil {
		return c.logger
	}
	if _, ok := gmw.GetGinCtxFromStdCtx(ctx); !ok {
		return c.logger
	}

	return gmw.GetLogger(ctx).Named("search_client")
}

// reportedError returns the error field of a JSON object payload.
func reportedError(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}

	var payload errorPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return "", false
	}
	if payload.Error == "" {
		return "", false
	}

	return payload.Error, true
}

// errorMessage extracts the error text from a failed response body.
func errorMessage(body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

// truncateForLog limits the payload logged for debugging and reports whether truncation occurred.
func truncateForLog(body []byte, limit int) (string, bool) {
	if len(body) <= limit {
		return string(body), false
	}
	return string(body[:limit]), true
}
