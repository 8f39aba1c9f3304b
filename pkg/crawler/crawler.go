package crawler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/adrianliechti/llmstxt/pkg/discover"
	"github.com/adrianliechti/llmstxt/pkg/extract"
	"github.com/adrianliechti/llmstxt/pkg/fetch"
	"github.com/adrianliechti/llmstxt/pkg/robots"
	"github.com/adrianliechti/llmstxt/pkg/sitemap"
	"github.com/adrianliechti/llmstxt/pkg/summarizer"
)

const defaultWorkers = 5

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Permissions interface {
	Allowed(ctx context.Context, url string) bool
	Sitemaps(ctx context.Context, url string) []string
}

type SitemapFinder interface {
	URLs(ctx context.Context, site string, declared []string) []string
}

type Crawler struct {
	fetcher     Fetcher
	permissions Permissions
	sitemaps    SitemapFinder
	summarizer  summarizer.Provider

	workers int
}

type Option func(*Crawler)

func WithFetcher(f Fetcher) Option {
	return func(c *Crawler) {
		c.fetcher = f
	}
}

func WithPermissions(p Permissions) Option {
	return func(c *Crawler) {
		c.permissions = p
	}
}

func WithSitemaps(s SitemapFinder) Option {
	return func(c *Crawler) {
		c.sitemaps = s
	}
}

func WithSummarizer(p summarizer.Provider) Option {
	return func(c *Crawler) {
		c.summarizer = p
	}
}

func WithWorkers(workers int) Option {
	return func(c *Crawler) {
		if workers > 0 {
			c.workers = workers
		}
	}
}

func New(options ...Option) *Crawler {
	c := &Crawler{
		workers: defaultWorkers,
	}

	for _, option := range options {
		option(c)
	}

	if c.fetcher == nil {
		c.fetcher = fetch.New()
	}

	if c.permissions == nil {
		c.permissions = robots.New()
	}

	if c.sitemaps == nil {
		c.sitemaps = sitemap.New()
	}

	return c
}

type RunOptions struct {
	Mode Mode
}

// Run crawls the site rooted at rawURL and returns the collected page
// records. Individual page failures never abort the run; only an
// invalid, disallowed or unreachable root does.
func (c *Crawler) Run(ctx context.Context, rawURL string, options *RunOptions) (*Result, error) {
	if options == nil {
		options = new(RunOptions)
	}

	mode := options.Mode

	if mode == "" {
		mode = ModeDigest
	}

	root, err := ValidateURL(rawURL)

	if err != nil {
		return nil, err
	}

	rootURL := root.String()

	if !c.permissions.Allowed(ctx, rootURL) {
		return nil, ErrDisallowed
	}

	slog.InfoContext(ctx, "fetching root page", "url", rootURL)

	body, err := c.fetcher.Fetch(ctx, rootURL)

	if err != nil {
		return nil, err
	}

	page, err := extract.Parse(bytes.NewReader(body), rootURL)

	if err != nil {
		return nil, err
	}

	declared := c.permissions.Sitemaps(ctx, rootURL)
	candidates := discover.Filter(discover.Links(page, c.sitemaps.URLs(ctx, rootURL, declared)))

	links := make([]discover.Link, 0, len(candidates))

	for _, link := range candidates {
		if link.URL == rootURL {
			continue
		}

		links = append(links, link)
	}

	slog.InfoContext(ctx, "crawling candidate links", "url", rootURL, "count", len(links))

	result := &Result{
		ID: uuid.NewString(),

		URL:         rootURL,
		Description: page.SiteDescription(),
	}

	jobs := make(chan discover.Link)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup

	for range c.workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for link := range jobs {
				outcomes <- c.process(ctx, link, mode)
			}
		}()
	}

	go func() {
		defer close(jobs)

		for _, link := range links {
			jobs <- link
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for o := range outcomes {
		if o.failure != nil {
			result.Failures = append(result.Failures, *o.failure)
			continue
		}

		result.Pages = append(result.Pages, *o.page)
	}

	return result, nil
}

type outcome struct {
	page    *Page
	failure *Failure
}

func (c *Crawler) process(ctx context.Context, link discover.Link, mode Mode) outcome {
	if !c.permissions.Allowed(ctx, link.URL) {
		page := disallowedPage(link)
		return outcome{page: &page}
	}

	body, err := c.fetcher.Fetch(ctx, link.URL)

	if err != nil {
		slog.WarnContext(ctx, "fetch failed", "url", link.URL, "error", err)

		failure := Failure{
			URL:    link.URL,
			Title:  link.Title,
			Reason: err.Error(),
		}

		var fetchErr *fetch.Error

		if errors.As(err, &fetchErr) {
			failure.Status = fetchErr.Status
		}

		return outcome{failure: &failure}
	}

	page, err := extract.Parse(bytes.NewReader(body), link.URL)

	if err != nil {
		return outcome{failure: &Failure{
			URL:    link.URL,
			Title:  link.Title,
			Reason: err.Error(),
		}}
	}

	record := newPage(link, page)

	if mode == ModeFull || mode == ModeBoth {
		record.fillContent(page)
	}

	if mode == ModeDigest || mode == ModeBoth {
		record.Summary = c.summarize(ctx, link, page)
	}

	return outcome{page: &record}
}

func (c *Crawler) summarize(ctx context.Context, link discover.Link, page *extract.Page) string {
	if c.summarizer == nil {
		return summarizer.Fallback(page, link.Title)
	}

	content := page.Content()

	if content == "" {
		return summarizer.Fallback(page, link.Title)
	}

	summary, err := c.summarizer.Summarize(ctx, content, &summarizer.SummarizeOptions{
		Title: link.Title,
	})

	if err != nil {
		slog.WarnContext(ctx, "summarizer failed", "url", link.URL, "error", err)
		return summarizer.Fallback(page, link.Title)
	}

	return summary
}
