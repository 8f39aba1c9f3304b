package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/llmstxt/pkg/fetch"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "llmstxt", r.UserAgent())
		w.Write([]byte("<html><body>hello</body></html>"))
	}))

	defer server.Close()

	client := fetch.New(fetch.WithHTTPClient(server.Client()))

	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Contains(t, string(body), "hello")
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := fetch.New(fetch.WithHTTPClient(server.Client()))

	_, err := client.Fetch(context.Background(), server.URL+"/missing")
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, fetch.KindHTTP, fetchErr.Kind)
	require.Equal(t, http.StatusNotFound, fetchErr.Status)
	require.Equal(t, "HTTP 404", fetchErr.Error())
}

func TestFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))

	defer server.Close()

	client := fetch.New(fetch.WithHTTPClient(server.Client()), fetch.WithTimeout(50*time.Millisecond))

	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, fetch.KindTimeout, fetchErr.Kind)
	require.True(t, fetchErr.Timeout())
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := fetch.New()

	_, err := client.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, fetch.KindConnection, fetchErr.Kind)
}

func TestFetchContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))

	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := fetch.New(fetch.WithHTTPClient(server.Client()))

	_, err := client.Fetch(ctx, server.URL)
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.ErrorAs(t, err, &fetchErr)
}
