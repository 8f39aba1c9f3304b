package crawler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/llmstxt/pkg/crawler"
	"github.com/adrianliechti/llmstxt/pkg/fetch"
	"github.com/adrianliechti/llmstxt/pkg/summarizer"
)

type fakeFetcher struct {
	pages map[string]string
	errs  map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	if err, ok := f.errs[url]; ok {
		return nil, err
	}

	body, ok := f.pages[url]

	if !ok {
		return nil, &fetch.Error{Kind: fetch.KindHTTP, Status: 404, URL: url}
	}

	return []byte(body), nil
}

type fakePermissions struct {
	denied map[string]bool
}

func (p *fakePermissions) Allowed(_ context.Context, url string) bool {
	return !p.denied[url]
}

func (p *fakePermissions) Sitemaps(_ context.Context, _ string) []string {
	return nil
}

type fakeSitemaps struct {
	urls []string
}

func (s *fakeSitemaps) URLs(_ context.Context, _ string, _ []string) []string {
	return s.urls
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (s *fakeSummarizer) Summarize(_ context.Context, _ string, _ *summarizer.SummarizeOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return s.summary, nil
}

const root = "http://127.0.0.1/"

const rootPage = `<html><head>
	<meta name="description" content="A developer tools company.">
	<title>Acme</title>
</head><body>
	<a href="/docs">Product Documentation Portal</a>
	<a href="/pricing">Pricing Plans and Tiers</a>
	<a href="/blog">Engineering Blog Articles</a>
</body></html>`

func subPage(description string) string {
	return `<html><head>
		<meta name="description" content="` + description + `">
		<title>Acme Page</title>
	</head><body><main><p>` + description + ` This page describes the offering in detail for interested readers.</p></main></body></html>`
}

func newCrawler(f *fakeFetcher, options ...crawler.Option) *crawler.Crawler {
	base := []crawler.Option{
		crawler.WithFetcher(f),
		crawler.WithPermissions(&fakePermissions{}),
		crawler.WithSitemaps(&fakeSitemaps{}),
	}

	return crawler.New(append(base, options...)...)
}

func TestRunPartialFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root:                    rootPage,
			"http://127.0.0.1/docs": subPage("Documentation for the platform."),
			"http://127.0.0.1/blog": subPage("Articles from the engineering team."),
		},
		errs: map[string]error{
			"http://127.0.0.1/pricing": &fetch.Error{Kind: fetch.KindTimeout, URL: "http://127.0.0.1/pricing"},
		},
	}

	result, err := newCrawler(fetcher).Run(context.Background(), root, nil)
	require.NoError(t, err)

	require.Equal(t, 2, result.Successful())
	require.Equal(t, 1, result.Failed())
	require.Equal(t, 3, result.Total())
	require.InDelta(t, 66.7, result.SuccessRate(), 0.1)

	require.Equal(t, "A developer tools company.", result.Description)

	failure := result.Failures[0]
	require.Equal(t, "http://127.0.0.1/pricing", failure.URL)
	require.Equal(t, "request timed out", failure.Reason)
}

func TestRunDigestSummaries(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root:                    rootPage,
			"http://127.0.0.1/docs": subPage("Documentation for the platform."),
		},
		errs: map[string]error{
			"http://127.0.0.1/pricing": &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
			"http://127.0.0.1/blog":    &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
		},
	}

	c := newCrawler(fetcher, crawler.WithSummarizer(&fakeSummarizer{summary: "A concise page summary."}))

	result, err := c.Run(context.Background(), root, nil)
	require.NoError(t, err)

	require.Len(t, result.Pages, 1)
	require.Equal(t, "A concise page summary.", result.Pages[0].Summary)
	require.Empty(t, result.Pages[0].Content)
}

func TestRunSummarizerFallback(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root:                    rootPage,
			"http://127.0.0.1/docs": subPage("Documentation for the platform."),
		},
		errs: map[string]error{
			"http://127.0.0.1/pricing": &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
			"http://127.0.0.1/blog":    &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
		},
	}

	failing := &fakeSummarizer{err: summarizer.NewError(summarizer.KindRateLimited, errors.New("429"))}

	result, err := newCrawler(fetcher, crawler.WithSummarizer(failing)).Run(context.Background(), root, nil)
	require.NoError(t, err)

	require.Len(t, result.Pages, 1)
	require.Equal(t, "Documentation for the platform.", result.Pages[0].Summary)
}

func TestRunFullMode(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root:                    rootPage,
			"http://127.0.0.1/docs": subPage("Documentation for the platform."),
		},
		errs: map[string]error{
			"http://127.0.0.1/pricing": &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
			"http://127.0.0.1/blog":    &fetch.Error{Kind: fetch.KindHTTP, Status: 500},
		},
	}

	result, err := newCrawler(fetcher).Run(context.Background(), root, &crawler.RunOptions{Mode: crawler.ModeFull})
	require.NoError(t, err)

	require.Len(t, result.Pages, 1)

	page := result.Pages[0]
	require.NotEmpty(t, page.Content)
	require.Greater(t, page.Metadata.WordCount, 0)
	require.Equal(t, "success", page.Metadata.FetchStatus)
	require.Equal(t, 200, page.Metadata.HTTPStatus)
	require.False(t, page.Metadata.CrawlDate.IsZero())
}

func TestRunDisallowedLink(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root: rootPage,
			"http://127.0.0.1/docs":    subPage("Documentation for the platform."),
			"http://127.0.0.1/pricing": subPage("Plans and pricing."),
			"http://127.0.0.1/blog":    subPage("Engineering articles."),
		},
	}

	permissions := &fakePermissions{
		denied: map[string]bool{"http://127.0.0.1/pricing": true},
	}

	c := crawler.New(
		crawler.WithFetcher(fetcher),
		crawler.WithPermissions(permissions),
		crawler.WithSitemaps(&fakeSitemaps{}),
	)

	result, err := c.Run(context.Background(), root, nil)
	require.NoError(t, err)

	require.Equal(t, 3, result.Successful())
	require.Zero(t, result.Failed())

	var restricted *crawler.Page

	for i := range result.Pages {
		if result.Pages[i].URL == "http://127.0.0.1/pricing" {
			restricted = &result.Pages[i]
		}
	}

	require.NotNil(t, restricted)
	require.Equal(t, "Access restricted by robots.txt", restricted.Summary)
	require.Equal(t, "disallowed", restricted.Metadata.FetchStatus)
}

func TestRunDisallowedRoot(t *testing.T) {
	permissions := &fakePermissions{
		denied: map[string]bool{root: true},
	}

	c := crawler.New(
		crawler.WithFetcher(&fakeFetcher{}),
		crawler.WithPermissions(permissions),
		crawler.WithSitemaps(&fakeSitemaps{}),
	)

	_, err := c.Run(context.Background(), root, nil)
	require.ErrorIs(t, err, crawler.ErrDisallowed)
}

func TestRunRootFetchError(t *testing.T) {
	fetcher := &fakeFetcher{
		errs: map[string]error{
			root: &fetch.Error{Kind: fetch.KindTimeout, URL: root},
		},
	}

	_, err := newCrawler(fetcher).Run(context.Background(), root, nil)
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, fetch.KindTimeout, fetchErr.Kind)
}

func TestRunSitemapCandidates(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]string{
			root: `<html><head><meta name="description" content="A developer tools company."></head><body></body></html>`,
			"http://127.0.0.1/features": subPage("All product features."),
		},
	}

	sitemaps := &fakeSitemaps{urls: []string{"http://127.0.0.1/features"}}

	c := crawler.New(
		crawler.WithFetcher(fetcher),
		crawler.WithPermissions(&fakePermissions{}),
		crawler.WithSitemaps(sitemaps),
	)

	result, err := c.Run(context.Background(), root, nil)
	require.NoError(t, err)

	require.Equal(t, 1, result.Successful())
	require.Equal(t, "http://127.0.0.1/features", result.Pages[0].URL)
	require.Equal(t, "Feature Overview", result.Pages[0].Title)
}

func TestValidateURL(t *testing.T) {
	u, err := crawler.ValidateURL("127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, "https://127.0.0.1", u.String())

	_, err = crawler.ValidateURL("")
	require.ErrorIs(t, err, crawler.ErrInvalidURL)

	_, err = crawler.ValidateURL("ftp://example.com")
	require.ErrorIs(t, err, crawler.ErrInvalidURL)

	_, err = crawler.ValidateURL("https://definitely-not-a-real-host.invalid")
	require.ErrorIs(t, err, crawler.ErrInvalidURL)
}

func TestSuccessRateEmpty(t *testing.T) {
	result := &crawler.Result{}
	require.Zero(t, result.SuccessRate())
}
