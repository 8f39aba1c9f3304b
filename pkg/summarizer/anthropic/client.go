package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/llmstxt/pkg/summarizer"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ summarizer.Provider = (*Client)(nil)

type Client struct {
	*Config
	messages anthropic.MessageService
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
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Client) Summarize(ctx context.Context, content string, options *summarizer.SummarizeOptions) (string, error) {
	if options == nil {
		options = new(summarizer.SummarizeOptions)
	}

	message, err := c.messages.New(ctx, anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens:   100,
		Temperature: anthropic.Float(0.3),

		System: []anthropic.TextBlockParam{
			{Text: summarizer.SystemPrompt},
		},

		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(summarizer.UserPrompt(content, options.Title))),
		},
	})

	if err != nil {
		return "", convertError(err)
	}

	var text strings.Builder

	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", summarizer.NewError(summarizer.KindAPI, errors.New("empty completion"))
	}

	return summarizer.Sanitize(text.String()), nil
}

func convertError(err error) error {
	var apierr *anthropic.Error

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
