package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"payroll/internal/platform/metrics"
	"payroll/internal/requestctx"
)

func init() {
	// The backend reads amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// TokenSource hands out the bearer token and drops it when the backend
// rejects it.
type TokenSource interface {
	Token() string
	Clear() error
}

// Notifier is the user-visible error channel.
type Notifier interface {
	Error(message string)
}

type Client struct {
	baseURL        *url.URL
	http           *http.Client
	tokens         TokenSource
	notifier       Notifier
	metrics        *metrics.Collector
	logger         *logrus.Entry
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUnauthorizedHandler runs after the session was cleared because of a
// 401, whatever request triggered it.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL: parsed,
		http:    &http.Client{},
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetUnauthorizedHandler replaces the 401 hook after construction, for
// wiring that needs the client first.
func (c *Client) SetUnauthorizedHandler(fn func(ctx context.Context)) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// PostMultipart sends form as multipart/form-data.
func (c *Client) PostMultipart(ctx context.Context, path string, form *Multipart, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return errors.Wrap(err, "encode multipart body")
	}
	raw, _, err := c.do(ctx, http.MethodPost, path, nil, body, contentType)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// Download fetches a binary resource and the file name the server
// suggested, if any.
func (c *Client) Download(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	raw, header, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, "", err
	}
	name := ""
	if disposition := header.Get("Content-Disposition"); disposition != "" {
		if _, params, perr := mime.ParseMediaType(disposition); perr == nil {
			name = params["filename"]
		}
	}
	return raw, name, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s body", method, path)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	raw, _, err := c.do(ctx, method, path, query, reader, contentType)
	if err != nil {
		return err
	}
	if err := decodeInto(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, http.Header, error) {
	ctx, requestID := requestctx.EnsureRequestID(ctx)
	target := c.resolve(path, query)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(method, path, requestID, 0, start)
		apiErr := newTransportError(method, path, requestID, err)
		c.notify(apiErr)
		return nil, nil, apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.record(method, path, requestID, resp.StatusCode, start)
	if err != nil {
		apiErr := newTransportError(method, path, requestID, err)
		c.notify(apiErr)
		return nil, nil, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newStatusError(method, path, requestID, resp.StatusCode, raw)
		c.notify(apiErr)
		if resp.StatusCode == http.StatusUnauthorized {
			c.invalidateSession(ctx)
		}
		return nil, nil, apiErr
	}
	return raw, resp.Header, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) invalidateSession(ctx context.Context) {
	if c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			c.logger.WithError(err).Warn("clear session after 401 failed")
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

func (c *Client) notify(err *Error) {
	if c.notifier != nil {
		c.notifier.Error(err.Message)
	}
}

func (c *Client) record(method, path, requestID string, status int, start time.Time) {
	elapsed := time.Since(start)
	c.metrics.Record(status, elapsed)
	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     status,
		"durationMs": elapsed.Milliseconds(),
		"requestId":  requestID,
	}).Debug("api call")
}

func decodeInto(raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
