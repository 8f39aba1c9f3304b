package text

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace",
			input:    "hello   world\n\tagain",
			expected: "hello world again",
		},
		{
			name:     "trims",
			input:    "  padded  ",
			expected: "padded",
		},
		{
			name:     "drops control characters",
			input:    "a\x00b\x07c",
			expected: "abc",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"hello   world",
		"  a\tb\nc  ",
		"already clean",
		"",
		"tab\there and nbsp",
	}

	for _, input := range inputs {
		once := Clean(input)

		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestTruncateCharsShortInput(t *testing.T) {
	s := "short sentence."

	if got := TruncateChars(s, 100); got != s {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestTruncateCharsSentenceBoundary(t *testing.T) {
	s := strings.Repeat("word ", 30) + "End of sentence. " + strings.Repeat("more ", 20)

	got := TruncateChars(s, len(s)-10)

	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected cut at sentence boundary, got %q", got)
	}
}

func TestTruncateCharsProperties(t *testing.T) {
	inputs := []string{
		strings.Repeat("alpha beta gamma. ", 40),
		strings.Repeat("nospacesatall", 50),
		strings.Repeat("many words without punctuation here ", 30),
	}

	for _, s := range inputs {
		for _, max := range []int{10, 100, 400, 4000} {
			got := TruncateChars(s, max)

			if len(got) > max {
				t.Fatalf("len %d exceeds max %d", len(got), max)
			}

			if len(s) > max && !strings.HasPrefix(s, got) {
				t.Fatalf("result %q is not a prefix of input", got)
			}
		}
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{
			name:     "under limit unchanged",
			input:    "one two three",
			max:      5,
			expected: "one two three",
		},
		{
			name:     "cuts at sentence end",
			input:    "This is done. Trailing words continue here",
			max:      5,
			expected: "This is done.",
		},
		{
			name:     "cuts at clause end",
			input:    "first part here, second part continues on and on",
			max:      5,
			expected: "first part here,",
		},
		{
			name:     "drops trailing conjunction",
			input:    "the report covers revenue and expenses too",
			max:      5,
			expected: "the report covers revenue",
		},
		{
			name:     "hard cut",
			input:    "plain words without any break markers anywhere",
			max:      4,
			expected: "plain words without any",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.input, tt.max); got != tt.expected {
				t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestTruncateWordsNeverSplitsWords(t *testing.T) {
	s := "alpha beta gamma delta epsilon zeta eta theta"
	words := strings.Fields(s)

	for max := 1; max <= len(words)+2; max++ {
		got := TruncateWords(s, max)

		if gotWords := strings.Fields(got); len(gotWords) > max {
			t.Fatalf("max %d returned %d words", max, len(gotWords))
		}

		if !strings.HasPrefix(s, got) {
			t.Fatalf("result %q not a word-aligned prefix", got)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line endings",
			input:    "a\r\nb\rc",
			expected: "a\nb\nc",
		},
		{
			name:     "blank line runs collapse",
			input:    "a\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "trailing whitespace stripped",
			input:    "a  \nb\t\n",
			expected: "a\nb",
		},
		{
			name:     "replacement characters dropped",
			input:    "a�b",
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
