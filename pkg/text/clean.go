package text

import (
	"strings"
	"unicode"
)

// Clean collapses whitespace runs into single spaces, drops control and
// other non-printable characters and trims the result. Idempotent.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
			continue
		}

		if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
			continue
		}

		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Normalize prepares extracted markup for output. Line endings are
// converted to LF, control characters and replacement characters are
// dropped and runs of blank lines collapse to a single blank line.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, string(unicode.ReplacementChar), "")

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")

	var out []string
	blank := true

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")

		if strings.TrimSpace(trimmed) == "" {
			if !blank {
				out = append(out, "")
			}

			blank = true
			continue
		}

		out = append(out, trimmed)
		blank = false
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
