package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/adrianliechti/llmstxt/pkg/text"
)

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// renderMarkdown converts a fixed subset of structural tags into
// lightweight markdown. Unknown tags contribute their children only, so
// the output never contains raw HTML.
func renderMarkdown(sel *goquery.Selection, base *url.URL) string {
	var b strings.Builder

	for _, node := range sel.Nodes {
		renderNode(&b, node, base)
	}

	return strings.TrimSpace(b.String())
}

func renderNode(b *strings.Builder, node *html.Node, base *url.URL) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(inline(node.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	if level, ok := headingLevels[node.Data]; ok {
		b.WriteString("\n\n" + strings.Repeat("#", level) + " ")
		renderChildren(b, node, base)
		b.WriteString("\n\n")
		return
	}

	switch node.Data {
	case "strong", "b":
		b.WriteString("**")
		renderChildren(b, node, base)
		b.WriteString("**")
	case "em", "i":
		b.WriteString("*")
		renderChildren(b, node, base)
		b.WriteString("*")
	case "a":
		var inner strings.Builder
		renderChildren(&inner, node, base)

		label := strings.TrimSpace(inner.String())
		href := resolveHref(node, base)

		if label == "" {
			return
		}

		if href == "" {
			b.WriteString(label)
			return
		}

		b.WriteString("[" + label + "](" + href + ")")
	case "li":
		b.WriteString("\n- ")
		renderChildren(b, node, base)
	case "ul", "ol":
		renderChildren(b, node, base)
		b.WriteString("\n\n")
	case "blockquote":
		var inner strings.Builder
		renderChildren(&inner, node, base)

		b.WriteString("\n\n")

		for _, line := range strings.Split(strings.TrimSpace(inner.String()), "\n") {
			b.WriteString("> " + strings.TrimSpace(line) + "\n")
		}

		b.WriteString("\n")
	case "pre":
		var inner strings.Builder
		collectText(&inner, node)

		b.WriteString("\n\n```\n" + strings.Trim(inner.String(), "\n") + "\n```\n\n")
	case "code":
		var inner strings.Builder
		collectText(&inner, node)

		b.WriteString("`" + strings.TrimSpace(inner.String()) + "`")
	case "br":
		b.WriteString("\n")
	case "p", "div", "section", "article", "main", "tr", "table":
		b.WriteString("\n\n")
		renderChildren(b, node, base)
		b.WriteString("\n\n")
	default:
		renderChildren(b, node, base)
	}
}

func renderChildren(b *strings.Builder, node *html.Node, base *url.URL) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderNode(b, child, base)
	}
}

func collectText(b *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(b, child)
	}
}

// inline collapses intra-text whitespace while keeping single spaces, so
// words separated across source lines stay separated.
func inline(s string) string {
	cleaned := text.Clean(s)

	if cleaned == "" {
		if strings.ContainsAny(s, " \t\n") {
			return " "
		}

		return ""
	}

	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		cleaned = " " + cleaned
	}

	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		cleaned += " "
	}

	return cleaned
}

func resolveHref(node *html.Node, base *url.URL) string {
	for _, attr := range node.Attr {
		if attr.Key != "href" {
			continue
		}

		ref, err := url.Parse(strings.TrimSpace(attr.Val))

		if err != nil {
			return ""
		}

		if base != nil {
			ref = base.ResolveReference(ref)
		}

		return ref.String()
	}

	return ""
}
