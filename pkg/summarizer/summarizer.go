package summarizer

import (
	"context"
	"errors"
)

// Provider produces a one-sentence summary of page content. An LLM
// backend is optional; callers fall back to page metadata when no
// provider is configured.
type Provider interface {
	Summarize(ctx context.Context, content string, options *SummarizeOptions) (string, error)
}

var ErrNotConfigured = errors.New("summarizer not configured")

type SummarizeOptions struct {
	Title string
}

type Kind string

const (
	KindRateLimited Kind = "rate-limited"
	KindAuth        Kind = "auth"
	KindConnection  Kind = "connection"
	KindAPI         Kind = "api"
)

type Error struct {
	Kind Kind

	err error
}

func NewError(kind Kind, err error) *Error {
	return &Error{
		Kind: kind,

		err: err,
	}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRateLimited:
		return "rate limit exceeded"

	case KindAuth:
		return "authentication failed"

	case KindConnection:
		return "connection error"
	}

	if e.err != nil {
		return e.err.Error()
	}

	return "api error"
}

func (e *Error) Unwrap() error {
	return e.err
}

const SystemPrompt = "You are a helpful assistant that summarizes web page content in exactly one concise, informative sentence."

// UserPrompt builds the summarization request for a page. The title
// gives the model context for ambiguous content.
func UserPrompt(content, title string) string {
	context := ""

	if title != "" {
		context = "The page is titled '" + title + "'. "
	}

	return context +
		"Provide a single, concise sentence summarizing the main purpose or " +
		"specific offering of the following web page content. Focus on describing what makes " +
		"this page unique or what specific service/product/information it offers. " +
		"Do not include ellipses. Make it informative but brief:\n\n" + content
}
