package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><table>` +
			`<tr itemtype="http://schema.org/Book"><td><a class="bookTitle">Dune</a></td></tr>` +
			`</table><p id="ua">` + r.UserAgent() + `</p></body></html>`))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCollyFetcherFetch(t *testing.T) {
	srv := newTestServer(t)
	f := NewCollyFetcher(Options{})

	doc, err := f.Fetch(context.Background(), srv.URL+"/list")
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, 1, doc.Find(`tr[itemtype="http://schema.org/Book"]`).Length())
	require.Equal(t, DefaultUserAgent, doc.Find("#ua").Text())
}

func TestCollyFetcherCustomUserAgent(t *testing.T) {
	srv := newTestServer(t)
	f := NewCollyFetcher(Options{UserAgent: "book-scraper-test/1.0"})

	doc, err := f.Fetch(context.Background(), srv.URL+"/list")
	require.NoError(t, err)
	require.Equal(t, "book-scraper-test/1.0", doc.Find("#ua").Text())
}

func TestCollyFetcherSameURLTwice(t *testing.T) {
	srv := newTestServer(t)
	f := NewCollyFetcher(Options{})

	for i := 0; i < 2; i++ {
		_, err := f.Fetch(context.Background(), srv.URL+"/list")
		require.NoError(t, err)
	}
}

func TestCollyFetcherFailures(t *testing.T) {
	srv := newTestServer(t)
	f := NewCollyFetcher(Options{})

	tests := []struct {
		name       string
		url        string
		statusCode int
	}{
		{"not found", srv.URL + "/missing", http.StatusNotFound},
		{"server error", srv.URL + "/broken", http.StatusInternalServerError},
		{"unreachable host", "http://127.0.0.1:1/list", 0},
		{"malformed url", "://nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := f.Fetch(context.Background(), tt.url)
			require.Error(t, err)
			require.Nil(t, doc)

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			require.Equal(t, tt.url, fetchErr.URL)
			require.Equal(t, tt.statusCode, fetchErr.StatusCode)
		})
	}
}

func TestCollyFetcherCancelledContext(t *testing.T) {
	srv := newTestServer(t)
	f := NewCollyFetcher(Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, srv.URL+"/list")
	require.ErrorIs(t, err, context.Canceled)
}
