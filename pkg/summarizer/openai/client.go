package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/adrianliechti/llmstxt/pkg/summarizer"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

var _ summarizer.Provider = (*Client)(nil)

type Client struct {
	*Config
	completions openai.ChatCompletionService
}

func New(url, model string, options ...Option) (*Client, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Client{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Client) Summarize(ctx context.Context, content string, options *summarizer.SummarizeOptions) (string, error) {
	if options == nil {
		options = new(summarizer.SummarizeOptions)
	}

	completion, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),

		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(100),

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarizer.SystemPrompt),
			openai.UserMessage(summarizer.UserPrompt(content, options.Title)),
		},
	})

	if err != nil {
		return "", convertError(err)
	}

	if len(completion.Choices) == 0 {
		return "", summarizer.NewError(summarizer.KindAPI, errors.New("empty completion"))
	}

	return summarizer.Sanitize(completion.Choices[0].Message.Content), nil
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests:
			return summarizer.NewError(summarizer.KindRateLimited, err)

		case http.StatusUnauthorized, http.StatusForbidden:
			return summarizer.NewError(summarizer.KindAuth, err)
		}

		return summarizer.NewError(summarizer.KindAPI, err)
	}

	return summarizer.NewError(summarizer.KindConnection, err)
}
