package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// Options configures a CollyFetcher
type Options struct {
	UserAgent      string
	Delay          Delay
	RequestTimeout time.Duration // 0 keeps the collector default
}

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
	delay     Delay
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(opts Options) *CollyFetcher {
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
		colly.ParseHTTPErrorResponse(),
		colly.DetectCharset(),
	)

	if opts.RequestTimeout > 0 {
		c.SetRequestTimeout(opts.RequestTimeout)
	}

	return &CollyFetcher{
		collector: c,
		delay:     opts.Delay,
	}
}

// Fetch implements the Fetcher interface. It waits for the configured
// delay, issues a single GET and parses the body.
func (cf *CollyFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := cf.delay.Wait(ctx); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	// A clone shares the transport but not the callbacks
	c := cf.collector.Clone()
	c.Context = ctx

	var resp *colly.Response
	c.OnResponse(func(r *colly.Response) {
		resp = r
	})

	if err := c.Visit(url); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if resp == nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("no response received")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", http.StatusText(resp.StatusCode)),
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse HTML: %w", err)}
	}
	doc.Url = resp.Request.URL

	log.Printf("Fetched %s (%d bytes)\n", url, len(resp.Body))
	return doc, nil
}
