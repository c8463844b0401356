package triumph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/triumpharcade/triumph-go/internal/api"
	"github.com/triumpharcade/triumph-go/internal/crypto"
)

// DefaultTimeout is the per-request timeout used unless WithTimeout is set.
const DefaultTimeout = api.DefaultTimeout

// OrganizationHeader is the header carrying the organization id.
const OrganizationHeader = api.OrganizationHeader

var errEmptyBody = errors.New("empty response body")

// Client is the Triumph API client. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	config    *Configuration
	key       []byte
	apiClient *api.Client
	logger    *zap.Logger
}

// New creates a client for the given configuration. The API key is decoded
// here, so a malformed key fails fast with ErrInvalidKey.
func New(config *Configuration, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, ErrMissingConfiguration
	}
	if config.Organization() == "" {
		return nil, ErrMissingOrganization
	}

	key, err := crypto.ParseKey(config.APIKey())
	if err != nil {
		return nil, err
	}

	cfg := &clientConfig{
		baseURL: config.BaseURL(),
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		Headers:    map[string]string{OrganizationHeader: config.Organization()},
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
		UserAgent:  userAgent,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		config:    config,
		key:       key,
		apiClient: apiClient,
		logger:    cfg.logger,
	}, nil
}

// Configuration returns the configuration the client was built with.
func (c *Client) Configuration() *Configuration {
	return c.config
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Get issues GET {baseURL}/{path}. GET traffic is not enveloped: the body is
// returned as received.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	resp, err := c.apiClient.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Header:     resp.Header,
		Body:       resp.Body,
		Data:       parseBody(resp.Body),
	}, nil
}

// Post JSON-encodes data, seals it and issues POST {baseURL}/{path} with the
// envelope as the body. The response body is opened and parsed as JSON.
func (c *Client) Post(ctx context.Context, path string, data any) (*Response, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, &RequestSetupError{Message: fmt.Sprintf("encode payload: %v", err), Err: err}
	}

	envelope, err := crypto.Seal(c.key, payload)
	if err != nil {
		return nil, &RequestSetupError{Message: fmt.Sprintf("seal payload: %v", err), Err: err}
	}

	resp, err := c.apiClient.Post(ctx, path, envelope)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Open(c.key, envelopeText(resp.Body))
	if err != nil {
		c.logger.Debug("open response envelope", zap.String("path", path), zap.Error(err))
		return nil, &EnvelopeError{Err: err}
	}

	var result any
	if err := json.Unmarshal(plaintext, &result); err != nil {
		return nil, &ResponseDecodeError{Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: resp.StatusText,
		Header:     resp.Header,
		Body:       plaintext,
		Data:       result,
	}, nil
}

// envelopeText extracts the hex envelope from a response body. Servers send
// it either bare or as a JSON string literal.
func envelopeText(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) >= 2 && body[0] == '"' {
		if s, err := strconv.Unquote(string(body)); err == nil {
			return s
		}
	}
	return string(body)
}
