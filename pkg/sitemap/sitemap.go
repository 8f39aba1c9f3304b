package sitemap

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var conventionalPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap-index.xml",
}

const (
	maxBody     = 10 * 1024 * 1024
	maxSitemaps = 20
)

type Finder struct {
	client *http.Client
	agent  string
}

type Option func(*Finder)

func WithClient(client *http.Client) Option {
	return func(f *Finder) {
		f.client = client
	}
}

func WithAgent(agent string) Option {
	return func(f *Finder) {
		f.agent = agent
	}
}

func New(options ...Option) *Finder {
	f := &Finder{
		client: http.DefaultClient,
		agent:  "llmstxt",
	}

	for _, option := range options {
		option(f)
	}

	return f
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`

	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

type sitemapindex struct {
	XMLName xml.Name `xml:"sitemapindex"`

	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

// URLs collects page URLs from the site's sitemaps. Locations declared
// in robots.txt are probed first, then the conventional paths. Sitemap
// index files are expanded into their child sitemaps. A site without
// any sitemap yields an empty result, never an error.
func (f *Finder) URLs(ctx context.Context, site string, declared []string) []string {
	base, err := url.Parse(site)

	if err != nil {
		return nil
	}

	queue := make([]string, 0, len(declared)+len(conventionalPaths))
	queue = append(queue, declared...)

	for _, path := range conventionalPaths {
		queue = append(queue, base.ResolveReference(&url.URL{Path: path}).String())
	}

	visited := make(map[string]struct{})
	seen := make(map[string]struct{})

	var urls []string
	var fetched int

	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]

		if _, ok := visited[loc]; ok {
			continue
		}

		visited[loc] = struct{}{}

		if fetched >= maxSitemaps {
			break
		}

		body, ok := f.fetch(ctx, loc)

		if !ok {
			continue
		}

		fetched++

		var index sitemapindex

		if err := xml.Unmarshal(body, &index); err == nil && len(index.Sitemaps) > 0 {
			for _, child := range index.Sitemaps {
				if loc := strings.TrimSpace(child.Loc); loc != "" {
					queue = append(queue, loc)
				}
			}

			continue
		}

		var set urlset

		if err := xml.Unmarshal(body, &set); err != nil {
			continue
		}

		for _, entry := range set.URLs {
			loc := strings.TrimSpace(entry.Loc)

			if loc == "" {
				continue
			}

			if _, ok := seen[loc]; ok {
				continue
			}

			seen[loc] = struct{}{}
			urls = append(urls, loc)
		}
	}

	return urls
}

func (f *Finder) fetch(ctx context.Context, loc string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)

	if err != nil {
		return nil, false
	}

	req.Header.Set("User-Agent", f.agent)

	resp, err := f.client.Do(req)

	if err != nil {
		return nil, false
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	if err != nil {
		return nil, false
	}

	return body, true
}
