package robots_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/llmstxt/pkg/robots"
)

func TestAllowed(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}

		w.Write([]byte("User-agent: *\nDisallow: /private/\nSitemap: https://example.com/sitemap.xml\n"))
	}))

	defer server.Close()

	checker := robots.New(robots.WithClient(server.Client()))

	require.True(t, checker.Allowed(ctx, server.URL+"/docs"))
	require.False(t, checker.Allowed(ctx, server.URL+"/private/page"))
	require.Equal(t, []string{"https://example.com/sitemap.xml"}, checker.Sitemaps(ctx, server.URL))
}

func TestAllowedMissingRobots(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	checker := robots.New(robots.WithClient(server.Client()))

	require.True(t, checker.Allowed(ctx, server.URL+"/anything"))
}

func TestAllowedUnreachableHost(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	checker := robots.New(robots.WithClient(http.DefaultClient))

	require.True(t, checker.Allowed(ctx, server.URL+"/anything"))
}

func TestAllowedCachesPerHost(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))

	defer server.Close()

	checker := robots.New(robots.WithClient(server.Client()))

	checker.Allowed(ctx, server.URL+"/a")
	checker.Allowed(ctx, server.URL+"/b")
	checker.Allowed(ctx, server.URL+"/c")

	require.Equal(t, int32(1), calls.Load())
}

func TestAllowedRespectsAgent(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: badbot\nDisallow: /\n\nUser-agent: *\nAllow: /\n"))
	}))

	defer server.Close()

	blocked := robots.New(robots.WithClient(server.Client()), robots.WithAgent("badbot"))
	require.False(t, blocked.Allowed(ctx, server.URL+"/docs"))

	open := robots.New(robots.WithClient(server.Client()), robots.WithAgent("goodbot"))
	require.True(t, open.Allowed(ctx, server.URL+"/docs"))
}
