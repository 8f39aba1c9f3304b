package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBody = 10 * 1024 * 1024

type Client struct {
	client *http.Client
	agent  string
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func WithAgent(agent string) Option {
	return func(c *Client) {
		c.agent = agent
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func New(options ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},

		agent: "llmstxt",
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Fetch retrieves the document at url. Failures are classified so
// callers can report the cause without inspecting transport internals.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, &Error{Kind: KindOther, URL: url, err: err}
	}

	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, classify(url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{Kind: KindHTTP, Status: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if err != nil {
		return nil, classify(url, err)
	}

	return body, nil
}

func classify(url string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, URL: url, err: err}
	}

	var netErr net.Error

	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, URL: url, err: err}
	}

	var opErr *net.OpError

	if errors.As(err, &opErr) {
		return &Error{Kind: KindConnection, URL: url, err: err}
	}

	var dnsErr *net.DNSError

	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindConnection, URL: url, err: err}
	}

	return &Error{Kind: KindOther, URL: url, err: err}
}
