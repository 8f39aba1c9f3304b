package text

import (
	"strings"
	"unicode/utf8"
)

const (
	// sentenceMargin is how far before the limit the sentence search starts.
	sentenceMargin = 50

	// spaceMargin bounds the backward search for a word boundary.
	spaceMargin = 30
)

func isSentenceEnd(s string, i int) bool {
	c := s[i]

	if c != '.' && c != '!' && c != '?' {
		return false
	}

	return i+1 == len(s) || s[i+1] == ' '
}

// TruncateChars bounds text to max bytes. The cut prefers a sentence
// boundary near the limit, then a word boundary, then a hard cut. The
// result is always a (right-trimmed) prefix of the input.
func TruncateChars(text string, max int) string {
	if max <= 0 {
		return ""
	}

	if len(text) <= max {
		return text
	}

	pivot := max - sentenceMargin
	if pivot < 0 {
		pivot = 0
	}

	floor := pivot - 2*sentenceMargin
	if floor < 0 {
		floor = 0
	}

	for i := pivot; i >= floor; i-- {
		if isSentenceEnd(text, i) {
			return strings.TrimRight(text[:i+1], " ")
		}
	}

	for i := pivot + 1; i < max; i++ {
		if isSentenceEnd(text, i) {
			return strings.TrimRight(text[:i+1], " ")
		}
	}

	for i := max - 1; i >= max-1-spaceMargin && i >= 0; i-- {
		if text[i] == ' ' {
			return strings.TrimRight(text[:i], " ")
		}
	}

	cut := text[:max]

	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}

	return strings.TrimRight(cut, " ")
}

var trailingConnectives = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "so": {},
	"yet": {}, "with": {}, "to": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {}, "a": {}, "an": {}, "the": {},
}

func endsWith(word string, chars string) bool {
	return len(word) > 0 && strings.ContainsRune(chars, rune(word[len(word)-1]))
}

// TruncateWords bounds text to max words, preferring a cut after a
// sentence-ending word, then a clause-ending word, then before a trailing
// conjunction or preposition. Words are never split.
func TruncateWords(text string, max int) string {
	if max <= 0 {
		return ""
	}

	words := strings.Fields(text)

	if len(words) <= max {
		return text
	}

	words = words[:max]

	window := 10
	if window > max {
		window = max
	}

	for i := len(words) - 1; i >= len(words)-window; i-- {
		if endsWith(words[i], ".!?") {
			return strings.Join(words[:i+1], " ")
		}
	}

	for i := len(words) - 1; i >= len(words)-window; i-- {
		if endsWith(words[i], ",;:") {
			return strings.Join(words[:i+1], " ")
		}
	}

	for len(words) > 1 {
		last := strings.ToLower(words[len(words)-1])

		if _, ok := trailingConnectives[last]; !ok {
			break
		}

		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}
