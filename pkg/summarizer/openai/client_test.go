package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/llmstxt/pkg/summarizer"
	"github.com/adrianliechti/llmstxt/pkg/summarizer/openai"
)

func TestSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "A continuous integration service for monorepos...",
					},
					"finish_reason": "stop",
				},
			},
		})
	}))

	defer server.Close()

	client, err := openai.New(server.URL, "gpt-4o-mini", openai.WithToken("test-token"))
	require.NoError(t, err)

	summary, err := client.Summarize(context.Background(), "Acme CI runs tests on every push.", &summarizer.SummarizeOptions{Title: "Acme CI"})
	require.NoError(t, err)
	require.Equal(t, "A continuous integration service for monorepos", summary)
}

func TestSummarizeRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit", "type": "rate_limit_error"}}`))
	}))

	defer server.Close()

	client, err := openai.New(server.URL, "gpt-4o-mini", openai.WithToken("test-token"))
	require.NoError(t, err)

	_, err = client.Summarize(context.Background(), "content", nil)
	require.Error(t, err)

	var serr *summarizer.Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, summarizer.KindRateLimited, serr.Kind)
}
