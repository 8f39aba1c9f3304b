package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/adrianliechti/llmstxt/pkg/text"
)

const maxDescriptionChars = 200

// Metadata holds the per-page fields rendered into the full dump.
type Metadata struct {
	CanonicalURL string
	Modified     *time.Time
	Tags         []string
	Pagination   string
}

func (p *Page) Metadata() Metadata {
	m := Metadata{
		CanonicalURL: p.canonicalURL(),
		Tags:         p.tags(),
		Pagination:   p.pagination(),
	}

	if raw := p.metaContent(`meta[property="article:modified_time"]`); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			m.Modified = &t
		}
	}

	return m
}

func (p *Page) canonicalURL() string {
	if href := text.Clean(p.doc.Find(`link[rel="canonical"]`).AttrOr("href", "")); href != "" {
		return href
	}

	if u := p.metaContent(`meta[property="og:url"]`); u != "" {
		return u
	}

	return p.url.String()
}

func (p *Page) tags() []string {
	seen := map[string]struct{}{}

	var tags []string

	add := func(raw string) {
		tag := text.Clean(raw)

		if tag == "" {
			return
		}

		key := strings.ToLower(tag)

		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	for _, raw := range strings.Split(p.metaContent(`meta[name="keywords"]`), ",") {
		add(raw)
	}

	add(p.metaContent(`meta[property="article:section"]`))

	p.doc.Find(`meta[property="article:tag"]`).Each(func(_ int, sel *goquery.Selection) {
		add(sel.AttrOr("content", ""))
	})

	if len(tags) > 10 {
		tags = tags[:10]
	}

	return tags
}

// pagination records a note when the page links to further pages. The
// crawl itself stays shallow: next pages are never followed.
func (p *Page) pagination() string {
	if next := text.Clean(p.doc.Find(`link[rel="next"], a[rel="next"]`).AttrOr("href", "")); next != "" {
		return "paginated, next: " + next
	}

	if p.doc.Find(`.pagination, .pager`).Length() > 0 {
		return "pagination controls present"
	}

	return ""
}

// MetaDescription returns the page's meta description, if present.
func (p *Page) MetaDescription() string {
	return p.metaContent(`meta[name="description"]`)
}

// FirstParagraphs joins the first substantial paragraphs of the page,
// used to synthesize a summary when nothing better is available.
func (p *Page) FirstParagraphs(limit int) string {
	var parts []string
	total := 0

	p.doc.Find("p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= limit {
			return false
		}

		t := text.Clean(sel.Text())

		if len(t) > 20 {
			parts = append(parts, t)
			total += len(t)
		}

		return total <= 50
	})

	return strings.Join(parts, " ")
}

// SiteDescription derives the one-line site descriptor. The standard
// meta description always wins when present; social metadata and visible
// content are fallbacks only.
func (p *Page) SiteDescription() string {
	for _, selector := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[property="twitter:description"]`,
		`meta[name="twitter:description"]`,
	} {
		if desc := p.metaContent(selector); desc != "" {
			return desc
		}
	}

	heading := p.firstLongText(p.doc.Find("h1, h2"), 15)
	paragraph := p.firstLongText(p.doc.Find("p"), 50)

	switch {
	case heading != "" && paragraph != "":
		return text.TruncateChars(heading+" - "+paragraph, maxDescriptionChars)
	case heading != "":
		return text.TruncateChars(heading, maxDescriptionChars)
	case paragraph != "":
		return text.TruncateChars(paragraph, maxDescriptionChars)
	}

	if title := p.Title(); title != "" {
		return title
	}

	return "Website at " + p.url.String()
}

func (p *Page) firstLongText(sel *goquery.Selection, minLength int) string {
	var found string

	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := text.Clean(s.Text()); len(t) > minLength {
			found = t
			return false
		}

		return true
	})

	return found
}

func (p *Page) metaContent(selector string) string {
	return text.Clean(p.doc.Find(selector).First().AttrOr("content", ""))
}
