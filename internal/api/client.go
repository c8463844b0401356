package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/triumpharcade/triumph-go/internal/apierrors"
)

// DefaultTimeout is applied to every request unless Config.Timeout is set.
const DefaultTimeout = 10 * time.Second

// OrganizationHeader carries the organization id on every request.
const OrganizationHeader = "triumph-organization"

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the API root, without a trailing path separator.
	BaseURL string
	// Headers are sent with every request.
	Headers map[string]string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient replaces the underlying net/http client when set.
	HTTPClient *http.Client
	// Logger receives debug-level request traces. Nil disables logging.
	Logger *zap.Logger
	// UserAgent is sent as the User-Agent header when set.
	UserAgent string
}

// Client is the HTTP API client.
type Client struct {
	baseURL string
	http    *resty.Client
	logger  *zap.Logger
}

// Response is a completed 2xx HTTP exchange.
type Response struct {
	StatusCode int
	StatusText string
	Header     http.Header
	Body       []byte
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(timeout).
		SetLogger(logger.Sugar()).
		SetPreRequestHook(markDispatched)

	if len(cfg.Headers) > 0 {
		rc.SetHeaders(cfg.Headers)
	}
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
		logger:  logger,
	}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins the base URL and path with a single separator.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends a request and returns the response if the server answered 2xx.
// A nil body sends no request body. Every failure is one of
// *apierrors.HTTPStatusError, *apierrors.NoResponseError or
// *apierrors.RequestSetupError.
func (c *Client) Do(ctx context.Context, method, path string, body *string) (*Response, error) {
	target := c.URL(path)
	if err := validateURL(target); err != nil {
		return nil, err
	}

	d := &dispatch{}
	req := c.http.R().SetContext(withDispatch(ctx, d))
	if body != nil {
		req.SetHeader("Content-Type", "text/plain; charset=utf-8").SetBody(*body)
	}

	start := time.Now()
	resp, err := req.Execute(method, target)

	if cerr := classify(resp, err, d.sent); cerr != nil {
		c.logger.Debug("api request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(cerr),
		)
		return nil, cerr
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode(),
		StatusText: statusText(resp),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// Get sends a GET request without a body.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post sends a POST request with a text body.
func (c *Client) Post(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, &body)
}

func validateURL(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return &apierrors.RequestSetupError{Message: fmt.Sprintf("invalid URL %q", target), Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &apierrors.RequestSetupError{Message: fmt.Sprintf("unsupported protocol scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return &apierrors.RequestSetupError{Message: fmt.Sprintf("missing host in URL %q", target)}
	}
	return nil
}
