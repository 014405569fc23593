package fetcher

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// DefaultUserAgent is the browser-identifying string sent with every request
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the page at url and parses it into a document.
	// Any failure is reported as a *FetchError; a nil error always comes
	// with a non-nil document.
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// FetchError reports a failed fetch: a transport error, a non-2xx
// status, or a body that could not be parsed
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
