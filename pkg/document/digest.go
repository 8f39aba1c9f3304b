package document

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/adrianliechti/llmstxt/pkg/crawler"
)

// Digest renders the llms.txt document: a site descriptor followed by
// one summary line per page, a failed-pages section and aggregate
// counts.
func Digest(result *crawler.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s llms.txt\n\n", hostname(result.URL))
	fmt.Fprintf(&b, "> %s\n\n", strings.TrimSpace(result.Description))

	for _, page := range sortPages(result.Pages) {
		title := strings.TrimSpace(page.Title)
		summary := trimRedundancy(page.Summary, title)

		fmt.Fprintf(&b, "- [%s](%s): %s\n", title, strings.TrimSpace(page.URL), summary)
	}

	if len(result.Failures) > 0 {
		b.WriteString("\n## Failed Pages\n\n")

		for _, failure := range sortFailures(result.Failures) {
			fmt.Fprintf(&b, "- [%s](%s): %s\n", strings.TrimSpace(failure.Title), failure.URL, failure.Reason)
		}
	}

	b.WriteString("\n## Crawl Summary\n\n")
	writeCounts(&b, result)

	return b.String()
}

func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)

	if err != nil || u.Host == "" {
		return rawURL
	}

	return u.Host
}
