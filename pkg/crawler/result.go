package crawler

import (
	"net/http"
	"strings"
	"time"

	"github.com/adrianliechti/llmstxt/pkg/discover"
	"github.com/adrianliechti/llmstxt/pkg/extract"
)

type Mode string

const (
	ModeDigest Mode = "digest"
	ModeFull   Mode = "full"
	ModeBoth   Mode = "both"
)

const disallowedNotice = "Access restricted by robots.txt"

type Result struct {
	ID string

	URL         string
	Description string

	Pages    []Page
	Failures []Failure
}

type Page struct {
	URL   string
	Title string

	Summary string
	Content string

	Metadata Metadata
}

type Metadata struct {
	CanonicalURL string
	LastModified *time.Time
	CrawlDate    time.Time

	HTTPStatus  int
	FetchStatus string

	WordCount int

	Tags       []string
	Pagination string
}

type Failure struct {
	URL   string
	Title string

	Reason string
	Status int
}

func (r *Result) Successful() int {
	return len(r.Pages)
}

func (r *Result) Failed() int {
	return len(r.Failures)
}

func (r *Result) Total() int {
	return len(r.Pages) + len(r.Failures)
}

// SuccessRate is the share of successful pages in percent, 0 when
// nothing was crawled.
func (r *Result) SuccessRate() float64 {
	total := r.Total()

	if total == 0 {
		return 0
	}

	return float64(r.Successful()) / float64(total) * 100
}

func newPage(link discover.Link, page *extract.Page) Page {
	metadata := page.Metadata()

	return Page{
		URL:   link.URL,
		Title: link.Title,

		Metadata: Metadata{
			CanonicalURL: metadata.CanonicalURL,
			LastModified: metadata.Modified,
			CrawlDate:    time.Now().UTC(),

			HTTPStatus:  http.StatusOK,
			FetchStatus: "success",

			Tags:       metadata.Tags,
			Pagination: metadata.Pagination,
		},
	}
}

func (p *Page) fillContent(page *extract.Page) {
	p.Content = page.Markdown()
	p.Metadata.WordCount = len(strings.Fields(p.Content))
}

func disallowedPage(link discover.Link) Page {
	return Page{
		URL:   link.URL,
		Title: link.Title,

		Summary: disallowedNotice,
		Content: disallowedNotice,

		Metadata: Metadata{
			CrawlDate:   time.Now().UTC(),
			FetchStatus: "disallowed",
		},
	}
}
