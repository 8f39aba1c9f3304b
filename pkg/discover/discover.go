// Package discover collects the candidate set of same-site content pages
// from a parsed root page and an optional sitemap, deduplicates them and
// filters out links that cannot carry content.
package discover

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/adrianliechti/llmstxt/pkg/extract"
	"github.com/adrianliechti/llmstxt/pkg/title"
)

type Source string

const (
	SourceHTML    Source = "html"
	SourceSitemap Source = "sitemap"
)

// Link is a candidate page, keyed by its normalized absolute URL.
type Link struct {
	URL    string
	Title  string
	Source Source
}

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".svg": {}, ".ico": {}, ".bmp": {}, ".avif": {},
}

var skippedSchemes = []string{"javascript:", "mailto:", "tel:", "sms:"}

// Links merges sitemap URLs and same-domain anchors found in the root
// page into a deduplicated candidate list, in discovery order. Sitemap
// entries are seeded first; their titles derive from the URL path since
// no anchor context exists.
func Links(page *extract.Page, sitemapURLs []string) []Link {
	root := page.URL()

	seen := make(map[string]struct{})

	var links []Link

	add := func(link Link) {
		if _, ok := seen[link.URL]; ok {
			return
		}

		seen[link.URL] = struct{}{}
		links = append(links, link)
	}

	for _, raw := range sitemapURLs {
		u, err := url.Parse(raw)

		if err != nil || !sameSite(u, root) || isImage(u.Path) {
			continue
		}

		u.Fragment = ""

		add(Link{
			URL:    u.String(),
			Title:  title.FromPath(u.Path),
			Source: SourceSitemap,
		})
	}

	page.Doc().Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))

		if href == "" || hasSkippedScheme(href) {
			return
		}

		ref, err := url.Parse(href)

		if err != nil {
			return
		}

		u := root.ResolveReference(ref)

		if !sameSite(u, root) {
			return
		}

		u.Fragment = ""

		resolved := u.String()

		if _, ok := seen[resolved]; ok {
			return
		}

		add(Link{
			URL:    resolved,
			Title:  title.Resolve(title.Context{Doc: page.Doc(), Link: sel, URL: u}),
			Source: SourceHTML,
		})
	})

	return links
}

// Filter drops candidates whose URL cannot point at content and
// candidates whose resolved title is generic. Ordinary utility pages
// (contact, about, terms) deliberately pass: they may hold useful
// content.
func Filter(links []Link) []Link {
	filtered := make([]Link, 0, len(links))

	for _, link := range links {
		if IsNonContent(link.URL) {
			continue
		}

		if title.IsGeneric(link.Title) {
			continue
		}

		filtered = append(filtered, link)
	}

	return filtered
}

// IsNonContent reports whether the URL's path component is empty of
// content: fragment-only, query-only or a non-HTTP pseudo-scheme.
func IsNonContent(rawURL string) bool {
	if hasSkippedScheme(rawURL) {
		return true
	}

	u, err := url.Parse(rawURL)

	if err != nil {
		return true
	}

	target := u.Path

	if target == "" {
		target = rawURL
	}

	return strings.HasPrefix(target, "#") || strings.HasPrefix(target, "?")
}

func hasSkippedScheme(raw string) bool {
	lower := strings.ToLower(raw)

	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}

	return false
}

func sameSite(u, root *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return strings.EqualFold(u.Host, root.Host)
}

func isImage(p string) bool {
	_, ok := imageExtensions[strings.ToLower(path.Ext(p))]
	return ok
}
