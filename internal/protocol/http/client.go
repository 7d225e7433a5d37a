// Package http adapts the net/http transport to the application's
// request and response types and hosts the executor that reduces an
// exchange to displayable text.
package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/artpar/lazycurl/internal/core"
	"github.com/artpar/lazycurl/internal/interfaces"
)

// DefaultTimeout bounds a request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client performs HTTP exchanges. It keeps an in-memory cookie jar so
// servers that set session cookies behave normally across requests;
// nothing is persisted.
type Client struct {
	httpClient *http.Client
	config     Config
}

// Config holds HTTP client configuration.
type Config struct {
	Timeout        time.Duration
	FollowRedirect bool
}

// Option configures the Client.
type Option func(*Client)

// NewClient creates an HTTP client with the given options.
func NewClient(opts ...Option) *Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	client := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
		config: Config{
			Timeout:        DefaultTimeout,
			FollowRedirect: true,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.config.Timeout = timeout
		c.httpClient.Timeout = timeout
	}
}

// WithTransport sets a custom HTTP transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = transport
	}
}

// WithNoRedirects disables automatic redirect following.
func WithNoRedirects() Option {
	return func(c *Client) {
		c.config.FollowRedirect = false
		c.httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
}

// Protocol returns the protocol identifier.
func (c *Client) Protocol() string {
	return "http"
}

// Send executes one HTTP request and returns the fully-read response.
// Non-2xx statuses are not errors; only transport and read failures are.
func (c *Client) Send(ctx context.Context, req *core.Request) (*core.Response, error) {
	startTime := time.Now()

	httpReq, err := c.toHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return c.fromHTTPResponse(req, httpResp, bodyBytes, startTime, time.Now()), nil
}

// toHTTPRequest converts a core.Request to an http.Request. A payload is
// attached exactly when the request carries one, even when it is empty.
func (c *Client) toHTTPRequest(ctx context.Context, req *core.Request) (*http.Request, error) {
	var bodyReader io.Reader
	if req.HasBody() {
		bodyReader = strings.NewReader(req.Body())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), c.endpointWithParams(req), bodyReader)
	if err != nil {
		return nil, err
	}

	// Headers go out in insertion order.
	for _, key := range req.Headers().Keys() {
		for _, value := range req.Headers().Values(key) {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

// endpointWithParams appends any query parameters carried by the request
// to its endpoint. The endpoint itself is never rewritten or validated.
func (c *Client) endpointWithParams(req *core.Request) string {
	if req.Params().Len() == 0 {
		return req.Endpoint()
	}

	endpoint := req.Endpoint()
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + req.Params().Encode()
}

// fromHTTPResponse converts an http.Response into a core.Response.
func (c *Client) fromHTTPResponse(req *core.Request, httpResp *http.Response, bodyBytes []byte, startTime, endTime time.Time) *core.Response {
	status := core.NewStatus(httpResp.StatusCode, httpResp.Status)

	headers := core.NewHeaders()
	for key, values := range httpResp.Header {
		for _, value := range values {
			headers.Add(key, value)
		}
	}

	timing := interfaces.TimingInfo{
		StartTime: startTime,
		EndTime:   endTime,
		Total:     endTime.Sub(startTime),
	}

	return core.NewResponse(req.ID(), status).
		WithHeaders(headers).
		WithBody(bodyBytes).
		WithTiming(timing)
}
