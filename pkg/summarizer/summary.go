package summarizer

import (
	"strings"

	"github.com/adrianliechti/llmstxt/pkg/extract"
	"github.com/adrianliechti/llmstxt/pkg/text"
)

// MaxSummaryChars bounds every summary, model-written or fallback.
const MaxSummaryChars = 150

const excerptWords = 40

// Sanitize normalizes a summary: whitespace collapsed, dangling
// ellipses removed, length bounded at a natural break.
func Sanitize(summary string) string {
	summary = text.Clean(summary)

	if rest, ok := strings.CutSuffix(summary, "..."); ok && !strings.HasSuffix(rest, ".") {
		summary = strings.TrimRight(rest, " ")
	}

	return text.TruncateChars(summary, MaxSummaryChars)
}

// Fallback derives a summary from the page itself, used when no
// provider is configured or the provider failed. Preference order:
// meta description, document title, leading paragraph excerpt, link
// title, page URL.
func Fallback(page *extract.Page, title string) string {
	if description := page.MetaDescription(); description != "" {
		return Sanitize(description)
	}

	if pageTitle := page.Title(); pageTitle != "" {
		return Sanitize(pageTitle)
	}

	if excerpt := page.FirstParagraphs(3); excerpt != "" {
		return Sanitize(text.TruncateWords(text.Clean(excerpt), excerptWords))
	}

	if title != "" {
		return "Page about " + title
	}

	return "Page at " + page.URL().String()
}
