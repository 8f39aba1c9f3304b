package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/llmstxt/pkg/extract"
)

func parse(t *testing.T, html string) *extract.Page {
	t.Helper()

	page, err := extract.Parse(strings.NewReader(html), "https://example.com/docs")
	require.NoError(t, err)

	return page
}

func TestContentPrefersMainLandmark(t *testing.T) {
	page := parse(t, `<html><body>
		<nav>Home About Contact</nav>
		<main><p>The platform ingests streaming events.</p></main>
		<footer>Copyright</footer>
	</body></html>`)

	got := page.Content()
	require.Equal(t, "The platform ingests streaming events.", got)
}

func TestContentSkipsStrippedElements(t *testing.T) {
	page := parse(t, `<html><body>
		<main>
			<script>var x = 1;</script>
			<p>Visible text only.</p>
		</main>
	</body></html>`)

	got := page.Content()
	require.NotContains(t, got, "var x")
	require.Contains(t, got, "Visible text only.")
}

func TestContentSectionTier(t *testing.T) {
	long := strings.Repeat("Substantial section content here. ", 5)

	page := parse(t, `<html><body>
		<div class="content-area">`+long+`</div>
	</body></html>`)

	got := page.Content()
	require.Contains(t, got, "Substantial section content here.")
}

func TestContentParagraphTier(t *testing.T) {
	page := parse(t, `<html><body>
		<span>tiny</span>
		<p>`+strings.Repeat("meaningful paragraph text ", 4)+`</p>
	</body></html>`)

	got := page.Content()
	require.Contains(t, got, "meaningful paragraph text")
}

func TestContentBounded(t *testing.T) {
	long := strings.Repeat("A full sentence that keeps going. ", 400)

	page := parse(t, `<html><body><main><p>`+long+`</p></main></body></html>`)

	got := page.Content()
	require.LessOrEqual(t, len(got), extract.MaxContentChars)
	require.True(t, strings.HasSuffix(got, "."), "expected sentence boundary, got %q", got[len(got)-20:])
}

func TestContentNeverRawHTML(t *testing.T) {
	page := parse(t, `<html><body><main><p>Hello <b>world</b></p></main></body></html>`)

	got := page.Content()
	require.NotContains(t, got, "<")
	require.Equal(t, "Hello world", got)
}

func TestMarkdown(t *testing.T) {
	page := parse(t, `<html><body><main>
		<h1>Install Guide</h1>
		<p>Use the <strong>stable</strong> channel and the <a href="/cli">CLI</a>.</p>
		<ul><li>Download</li><li>Verify</li></ul>
		<blockquote>Always pin versions.</blockquote>
		<pre>apt install acme</pre>
	</main></body></html>`)

	got := page.Markdown()

	require.Contains(t, got, "# Install Guide")
	require.Contains(t, got, "**stable**")
	require.Contains(t, got, "[CLI](https://example.com/cli)")
	require.Contains(t, got, "- Download")
	require.Contains(t, got, "- Verify")
	require.Contains(t, got, "> Always pin versions.")
	require.Contains(t, got, "```\napt install acme\n```")
	require.NotContains(t, got, "\n\n\n")
}

func TestSiteDescriptionMetaFirst(t *testing.T) {
	page := parse(t, `<html><head>
		<meta name="description" content="Acme builds deployment tooling.">
		<meta property="og:description" content="social copy">
	</head><body><h1>Big headline here</h1></body></html>`)

	require.Equal(t, "Acme builds deployment tooling.", page.SiteDescription())
}

func TestSiteDescriptionFallbacks(t *testing.T) {
	page := parse(t, `<html><body>
		<h1>Continuous Delivery Platform</h1>
		<p>`+strings.Repeat("Ship safely with progressive rollouts. ", 3)+`</p>
	</body></html>`)

	got := page.SiteDescription()
	require.Contains(t, got, "Continuous Delivery Platform - ")
	require.LessOrEqual(t, len(got), 200)
}

func TestSiteDescriptionUltimateFallback(t *testing.T) {
	page := parse(t, `<html><body></body></html>`)

	require.Equal(t, "Website at https://example.com/docs", page.SiteDescription())
}

func TestMetadata(t *testing.T) {
	page := parse(t, `<html><head>
		<link rel="canonical" href="https://example.com/docs/">
		<meta name="keywords" content="ci, cd, delivery">
		<meta property="article:section" content="Engineering">
		<link rel="next" href="/docs?page=2">
	</head><body></body></html>`)

	m := page.Metadata()

	require.Equal(t, "https://example.com/docs/", m.CanonicalURL)
	require.Equal(t, []string{"ci", "cd", "delivery", "Engineering"}, m.Tags)
	require.Contains(t, m.Pagination, "next")
}

func TestMetadataDefaults(t *testing.T) {
	page := parse(t, `<html><body></body></html>`)

	m := page.Metadata()

	require.Equal(t, "https://example.com/docs", m.CanonicalURL)
	require.Empty(t, m.Tags)
	require.Empty(t, m.Pagination)
}
