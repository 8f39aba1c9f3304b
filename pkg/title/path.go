package title

import (
	"regexp"
	"strings"
)

var slugLabels = map[string]string{
	"contact":  "Contact Us Page",
	"about":    "About Us Page",
	"privacy":  "Privacy Policy",
	"terms":    "Terms of Service",
	"faq":      "FAQ Page",
	"blog":     "Blog Page",
	"news":     "News Page",
	"services": "Services Overview",
	"pricing":  "Pricing Plans",
	"features": "Feature Overview",
	"help":     "Help Center",
	"support":  "Support Center",
	"team":     "Meet the Team",
	"careers":  "Careers Page",
}

var idPrefixPattern = regexp.MustCompile(`^(id|post|page)-\d+`)

// FromPath derives a readable title from a URL path. Used for sitemap
// entries (no anchor context) and as the late tier of the resolver
// cascade. An empty path yields "Homepage".
func FromPath(path string) string {
	segment := lastSegment(path)

	if segment == "" {
		return "Homepage"
	}

	if i := strings.IndexByte(segment, '?'); i >= 0 {
		segment = segment[:i]
	}

	if i := strings.IndexByte(segment, '.'); i >= 0 {
		segment = segment[:i]
	}

	segment = idPrefixPattern.ReplaceAllString(segment, "")

	replacer := strings.NewReplacer("-", " ", "_", " ", "+", " ")
	name := strings.Join(strings.Fields(replacer.Replace(segment)), " ")

	if name == "" {
		return "Homepage"
	}

	if label, ok := slugLabels[strings.ToLower(name)]; ok {
		return label
	}

	return titleCase(name)
}

func lastSegment(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}

	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
