// Package extract isolates the primary readable content of an HTML page,
// discarding navigation and boilerplate, and renders it either as plain
// text or as lightweight markdown bounded to a fixed character budget.
package extract

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/adrianliechti/llmstxt/pkg/text"
)

// MaxContentChars bounds extracted content so downstream consumers (the
// summarizer in particular) receive a fixed input budget.
const MaxContentChars = 4000

const (
	substantialSectionChars   = 100
	substantialParagraphChars = 50
)

// structuralNoise never contributes readable content.
var structuralNoise = "nav, footer, aside, style, script, noscript"

// fullDumpNoise is additionally stripped for the full-content variant.
var fullDumpNoise = "header, form, img, svg, iframe, video, audio, embed, object"

// contentSelectors are tried in order; the first selector yielding text
// wins. Semantic landmarks first, then common CMS content classes.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".main-content",
	".content",
	".article",
	".post-content",
	".entry-content",
	".article-content",
	".blog-content",
	".page-content",
	".product-description",
	".tool-description",
}

var sectionSelectors = []string{
	"section",
	`div[class*="content"]`,
	`div[class*="article"]`,
	`div[class*="post"]`,
}

// Page is a parsed HTML document ready for extraction. The underlying
// document is never mutated; extraction variants work on clones.
type Page struct {
	doc *goquery.Document
	url *url.URL
	raw []byte
}

func Parse(r io.Reader, pageURL string) (*Page, error) {
	raw, err := io.ReadAll(r)

	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))

	if err != nil {
		return nil, err
	}

	u, err := url.Parse(pageURL)

	if err != nil {
		return nil, err
	}

	return &Page{doc: doc, url: u, raw: raw}, nil
}

// Doc exposes the parsed document for link discovery and title
// resolution. Callers must not mutate it.
func (p *Page) Doc() *goquery.Document {
	return p.doc
}

func (p *Page) URL() *url.URL {
	return p.url
}

// Title returns the document title, if any.
func (p *Page) Title() string {
	return text.Clean(p.doc.Find("title").First().Text())
}

// Content returns the page's main content as cleaned plain text, bounded
// to MaxContentChars. The result is never raw HTML.
func (p *Page) Content() string {
	doc := goquery.CloneDocument(p.doc)
	doc.Find(structuralNoise).Remove()

	content := p.selectContent(doc, func(sel *goquery.Selection) string {
		return text.Clean(sel.Text())
	}, "\n\n")

	return text.TruncateChars(text.Clean(content), MaxContentChars)
}

// Markdown returns the page's main content converted to lightweight
// markdown, bounded to MaxContentChars.
func (p *Page) Markdown() string {
	doc := goquery.CloneDocument(p.doc)
	doc.Find(structuralNoise).Remove()
	doc.Find(fullDumpNoise).Remove()

	content := p.selectContent(doc, func(sel *goquery.Selection) string {
		return renderMarkdown(sel, p.url)
	}, "\n\n")

	return text.TruncateChars(text.Normalize(content), MaxContentChars)
}

// selectContent runs the selector cascade and renders each matched
// region with render. Tiers: landmarks and CMS classes, substantial
// sections, substantial paragraphs, readability, whole body.
func (p *Page) selectContent(doc *goquery.Document, render func(*goquery.Selection) string, sep string) string {
	for _, selector := range contentSelectors {
		var parts []string

		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if part := render(sel); part != "" {
				parts = append(parts, part)
			}
		})

		if len(parts) > 0 {
			return strings.Join(parts, sep)
		}
	}

	for _, selector := range sectionSelectors {
		var parts []string

		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text.Clean(sel.Text()) == "" {
				return
			}

			if len(text.Clean(sel.Text())) > substantialSectionChars {
				if part := render(sel); part != "" {
					parts = append(parts, part)
				}
			}
		})

		if len(parts) > 0 {
			return strings.Join(parts, sep)
		}
	}

	var paragraphs []string

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if len(text.Clean(sel.Text())) > substantialParagraphChars {
			if part := render(sel); part != "" {
				paragraphs = append(paragraphs, part)
			}
		}
	})

	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, sep)
	}

	if content := p.readabilityContent(); content != "" {
		return content
	}

	body := doc.Find("body").First()

	if body.Length() == 0 {
		return ""
	}

	return render(body)
}

// readabilityContent runs a readability-style extraction over the whole
// document. Used only when the selector cascade comes up empty.
func (p *Page) readabilityContent() string {
	article, err := readability.FromReader(bytes.NewReader(p.raw), p.url)

	if err != nil {
		return ""
	}

	return text.Clean(article.TextContent)
}
