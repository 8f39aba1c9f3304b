package robots

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/temoto/robotstxt"
)

const (
	robotsPath = "/robots.txt"
	maxBody    = 512 * 1024
)

type Checker struct {
	client *http.Client
	agent  string

	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	data     *robotstxt.RobotsData
	sitemaps []string
	allowAll bool
}

type Option func(*Checker)

func WithClient(client *http.Client) Option {
	return func(c *Checker) {
		c.client = client
	}
}

func WithAgent(agent string) Option {
	return func(c *Checker) {
		c.agent = agent
	}
}

func New(options ...Option) *Checker {
	c := &Checker{
		client: http.DefaultClient,
		agent:  "llmstxt",

		entries: make(map[string]*entry),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Allowed reports whether the URL may be fetched according to the
// host's robots.txt. A missing, unreachable or unparsable robots.txt
// allows everything.
func (c *Checker) Allowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)

	if err != nil || u.Host == "" {
		return true
	}

	e := c.lookup(ctx, u)

	if e.allowAll {
		return true
	}

	return e.data.TestAgent(u.Path, c.agent)
}

// Sitemaps returns the sitemap locations declared in the host's
// robots.txt, if any.
func (c *Checker) Sitemaps(ctx context.Context, rawURL string) []string {
	u, err := url.Parse(rawURL)

	if err != nil || u.Host == "" {
		return nil
	}

	return c.lookup(ctx, u).sitemaps
}

func (c *Checker) lookup(ctx context.Context, u *url.URL) *entry {
	host := strings.ToLower(u.Host)

	c.mu.RLock()
	e, ok := c.entries[host]
	c.mu.RUnlock()

	if ok {
		return e
	}

	e = c.fetch(ctx, u.Scheme, host)

	c.mu.Lock()
	c.entries[host] = e
	c.mu.Unlock()

	return e
}

func (c *Checker) fetch(ctx context.Context, scheme, host string) *entry {
	if scheme == "" {
		scheme = "https"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scheme+"://"+host+robotsPath, nil)

	if err != nil {
		return &entry{allowAll: true}
	}

	req.Header.Set("User-Agent", c.agent)

	resp, err := c.client.Do(req)

	if err != nil {
		return &entry{allowAll: true}
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &entry{allowAll: true}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if err != nil {
		return &entry{allowAll: true}
	}

	data, err := robotstxt.FromBytes(body)

	if err != nil {
		return &entry{allowAll: true}
	}

	return &entry{
		data:     data,
		sitemaps: data.Sitemaps,
	}
}
