// Package document renders crawl results into the llms.txt digest and
// the llms-full.txt dump. Output is deterministic: records are sorted
// case-insensitively by title, ties broken by URL.
package document

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/adrianliechti/llmstxt/pkg/crawler"
)

var statusPattern = regexp.MustCompile(`\b([1-5]\d{2})\b`)

func sortPages(pages []crawler.Page) []crawler.Page {
	sorted := make([]crawler.Page, len(pages))
	copy(sorted, pages)

	sort.Slice(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Title)
		b := strings.ToLower(sorted[j].Title)

		if a != b {
			return a < b
		}

		return sorted[i].URL < sorted[j].URL
	})

	return sorted
}

func sortFailures(failures []crawler.Failure) []crawler.Failure {
	sorted := make([]crawler.Failure, len(failures))
	copy(sorted, failures)

	sort.Slice(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Title)
		b := strings.ToLower(sorted[j].Title)

		if a != b {
			return a < b
		}

		return sorted[i].URL < sorted[j].URL
	})

	return sorted
}

// trimRedundancy strips the title from the front of a summary so the
// digest line does not read "[Pricing](...): Pricing is ...".
func trimRedundancy(summary, title string) string {
	summary = strings.TrimSpace(summary)
	title = strings.TrimSpace(title)

	if title == "" {
		return summary
	}

	if !strings.HasPrefix(strings.ToLower(summary), strings.ToLower(title)+" ") {
		return summary
	}

	summary = strings.TrimSpace(summary[len(title):])

	if summary != "" && strings.ContainsRune("-:,;", rune(summary[0])) {
		summary = strings.TrimSpace(summary[1:])
	}

	return summary
}

// statusPhrase maps a failure to a human-readable status, falling back
// to scanning the reason for a status code.
func statusPhrase(failure crawler.Failure) string {
	status := failure.Status

	if status == 0 {
		if match := statusPattern.FindString(failure.Reason); match != "" {
			fmt.Sscanf(match, "%d", &status)
		}
	}

	if status == 0 {
		return ""
	}

	if text := http.StatusText(status); text != "" {
		return text
	}

	return fmt.Sprintf("HTTP %d", status)
}

func writeCounts(b *strings.Builder, result *crawler.Result) {
	fmt.Fprintf(b, "Total pages: %d\n", result.Total())
	fmt.Fprintf(b, "Successful: %d\n", result.Successful())
	fmt.Fprintf(b, "Failed: %d\n", result.Failed())
	fmt.Fprintf(b, "Success rate: %.1f%%\n", result.SuccessRate())
}
