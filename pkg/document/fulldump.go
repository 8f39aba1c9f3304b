package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrianliechti/llmstxt/pkg/crawler"
)

// FullDump renders the llms-full.txt document: a metadata block and
// the extracted content per page, separated by horizontal rules.
func FullDump(result *crawler.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s llms-full.txt\n\n", hostname(result.URL))
	fmt.Fprintf(&b, "Website Description: %s\n\n", strings.TrimSpace(result.Description))

	b.WriteString("--- Start Full Website Content ---\n\n")

	for _, page := range sortPages(result.Pages) {
		writePage(&b, page)
	}

	if len(result.Failures) > 0 {
		b.WriteString("## Failed Pages\n\n")

		for _, failure := range sortFailures(result.Failures) {
			fmt.Fprintf(&b, "- [%s](%s): %s", strings.TrimSpace(failure.Title), failure.URL, failure.Reason)

			if phrase := statusPhrase(failure); phrase != "" {
				fmt.Fprintf(&b, " (%s)", phrase)
			}

			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	b.WriteString("--- End Full Website Content ---\n\n")

	b.WriteString("## Crawl Summary\n\n")
	writeCounts(&b, result)

	return b.String()
}

func writePage(b *strings.Builder, page crawler.Page) {
	fmt.Fprintf(b, "## Page Title: %s\n", strings.TrimSpace(page.Title))
	fmt.Fprintf(b, "URL: %s\n", page.URL)

	metadata := page.Metadata

	if metadata.CanonicalURL != "" {
		fmt.Fprintf(b, "Canonical URL: %s\n", metadata.CanonicalURL)
	}

	if metadata.LastModified != nil {
		fmt.Fprintf(b, "Last Modified: %s\n", metadata.LastModified.UTC().Format(time.RFC3339))
	}

	if !metadata.CrawlDate.IsZero() {
		fmt.Fprintf(b, "Crawl Date: %s\n", metadata.CrawlDate.UTC().Format(time.RFC3339))
	}

	if metadata.HTTPStatus != 0 {
		fmt.Fprintf(b, "HTTP Status: %d\n", metadata.HTTPStatus)
	}

	if metadata.FetchStatus != "" {
		fmt.Fprintf(b, "Fetch Status: %s\n", metadata.FetchStatus)
	}

	fmt.Fprintf(b, "Word Count: %d\n", metadata.WordCount)

	if len(metadata.Tags) > 0 {
		fmt.Fprintf(b, "Tags: %s\n", strings.Join(metadata.Tags, ", "))
	}

	if metadata.Pagination != "" {
		fmt.Fprintf(b, "Pagination: %s\n", metadata.Pagination)
	}

	content := strings.TrimSpace(page.Content)

	if content == "" {
		content = "No content extracted for this page."
	}

	fmt.Fprintf(b, "\n%s\n\n", content)
	b.WriteString("---\n\n")
}
