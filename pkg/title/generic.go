package title

import "strings"

// genericMinLength is the length below which link text carries no
// page-specific information unless it contains a whitelisted term.
const genericMinLength = 10

var genericTexts = map[string]struct{}{
	"read more": {}, "learn more": {}, "click here": {}, "here": {},
	"view details": {}, "details": {}, "discover": {}, "explore": {},
	"find out more": {}, "more": {}, "continue": {}, "continue reading": {},
	"view": {}, "view now": {}, "see more": {}, "see all": {},
	"get started": {}, "sign up": {}, "register": {}, "login": {},
	"sign in": {}, "home": {}, "homepage": {}, "back": {}, "next": {},
	"previous": {}, "submit": {}, "send": {}, "go": {}, "go to": {},
	"contact": {}, "contact us": {}, "about": {}, "about us": {},
	"services": {}, "products": {}, "blog": {}, "article": {},
	"shop": {}, "store": {},
}

var shortWhitelist = []string{
	"pricing", "features", "api", "docs", "demo", "download", "subscribe",
}

// IsGeneric reports whether link text is too unspecific to serve as a
// page title ("click here", "read more", bare navigation labels).
func IsGeneric(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))

	if s == "" {
		return true
	}

	if _, ok := genericTexts[s]; ok {
		return true
	}

	if len(s) < genericMinLength {
		for _, term := range shortWhitelist {
			if strings.Contains(s, term) {
				return false
			}
		}

		return true
	}

	return false
}
