// Package title derives a descriptive, never-empty title for a link by
// running an ordered cascade of heuristics over its anchor element, its
// surroundings and its URL.
package title

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/adrianliechti/llmstxt/pkg/text"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Context carries everything a strategy may inspect: the full document,
// the anchor element and its resolved absolute URL.
type Context struct {
	Doc  *goquery.Document
	Link *goquery.Selection
	URL  *url.URL
}

type strategy func(Context) string

var strategies = []strategy{
	fromTitleAttribute,
	fromInnerHeading,
	fromWrappingHeading,
	fromLinkText,
	fromContentContainer,
	fromSiblingHeadings,
	fromStructuredData,
	fromPath,
}

// Resolve returns the most descriptive title for the link. It never
// returns an empty string: when every strategy fails it falls back to the
// raw link text, then to a synthetic path-based label.
func Resolve(ctx Context) string {
	for _, s := range strategies {
		if title := s(ctx); title != "" {
			return title
		}
	}

	if raw := text.Clean(ctx.Link.Text()); raw != "" {
		return raw
	}

	path := "/"
	if ctx.URL != nil && ctx.URL.Path != "" {
		path = ctx.URL.Path
	}

	return "Page at " + path
}

func fromTitleAttribute(ctx Context) string {
	title := text.Clean(ctx.Link.AttrOr("title", ""))

	if len(title) > 5 {
		return title
	}

	return ""
}

func fromInnerHeading(ctx Context) string {
	inner := ctx.Link.Find(headingSelector + ", strong, b").First()

	if inner.Length() == 0 {
		return ""
	}

	return qualified(inner.Text(), 10)
}

func fromWrappingHeading(ctx Context) string {
	heading := ctx.Link.Closest(headingSelector)

	if heading.Length() == 0 {
		return ""
	}

	return qualified(heading.Text(), 10)
}

func fromLinkText(ctx Context) string {
	return qualified(ctx.Link.Text(), 15)
}

var containerClassPattern = regexp.MustCompile(
	`(post|card|entry|article|product|feature|widget|item|content|body|tool|service)`)

var titleClasses = map[string]struct{}{
	"title": {}, "name": {}, "heading": {}, "header": {},
}

func fromContentContainer(ctx Context) string {
	container := closestByClass(ctx.Link, func(class string) bool {
		return containerClassPattern.MatchString(class)
	})

	if container == nil {
		return ""
	}

	if t := qualified(container.Find(headingSelector).First().Text(), 10); t != "" {
		return t
	}

	if t := qualified(container.Find("strong, b, em").First().Text(), 10); t != "" {
		return t
	}

	var found string

	container.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, class := range strings.Fields(sel.AttrOr("class", "")) {
			if _, ok := titleClasses[strings.ToLower(class)]; !ok {
				continue
			}

			if t := qualified(sel.Text(), 10); t != "" {
				found = t
				return false
			}
		}

		return true
	})

	return found
}

func fromSiblingHeadings(ctx Context) string {
	candidates := []*goquery.Selection{
		ctx.Link.PrevAllFiltered(headingSelector).First(),
		ctx.Link.NextAllFiltered(headingSelector).First(),
		ctx.Link.Parent().PrevAllFiltered(headingSelector).First(),
		ctx.Link.Parent().Find(headingSelector).First(),
	}

	for _, sel := range candidates {
		if sel.Length() == 0 {
			continue
		}

		if t := text.Clean(sel.Text()); len(t) > 5 {
			return t
		}
	}

	return ""
}

func fromStructuredData(ctx Context) string {
	scope := ctx.Link.Closest("[itemscope], [itemtype]")

	if scope.Length() > 0 {
		for _, prop := range []string{"name", "headline", "title"} {
			item := scope.Find(`[itemprop="` + prop + `"]`).First()

			if item.Length() == 0 {
				continue
			}

			if content := text.Clean(item.AttrOr("content", "")); content != "" {
				return content
			}

			if t := text.Clean(item.Text()); t != "" {
				return t
			}
		}
	}

	if ctx.Doc == nil {
		return ""
	}

	for _, selector := range []string{
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
	} {
		if content := text.Clean(ctx.Doc.Find(selector).AttrOr("content", "")); content != "" {
			return content
		}
	}

	return ""
}

func fromPath(ctx Context) string {
	if ctx.URL == nil {
		return ""
	}

	return FromPath(ctx.URL.Path)
}

// qualified cleans a candidate and rejects it when it is too short or
// classified as generic.
func qualified(candidate string, minLength int) string {
	candidate = text.Clean(candidate)

	if len(candidate) <= minLength || IsGeneric(candidate) {
		return ""
	}

	return candidate
}

// closestByClass walks the link's ancestors and returns the first whose
// class attribute satisfies match.
func closestByClass(link *goquery.Selection, match func(string) bool) *goquery.Selection {
	var found *goquery.Selection

	link.Parents().EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if match(sel.AttrOr("class", "")) {
			found = sel
			return false
		}

		return true
	})

	return found
}
