package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"book-scraper/exporter"
	"book-scraper/fetcher"
	"book-scraper/models"
	"book-scraper/parser"
)

// Summary describes a completed run
type Summary struct {
	Books      []models.Book
	PagesOK    int
	PagesError int
}

// Scraper drives fetch, extract and export over a list of URLs
type Scraper struct {
	fetcher fetcher.Fetcher
	parser  *parser.Parser
	outputs exporter.Outputs

	// Progress receives user-facing progress lines
	Progress io.Writer
	// Now stamps the text report
	Now func() time.Time
}

// NewScraper creates a new Scraper writing progress to stdout
func NewScraper(f fetcher.Fetcher, p *parser.Parser, outputs exporter.Outputs) *Scraper {
	return &Scraper{
		fetcher:  f,
		parser:   p,
		outputs:  outputs,
		Progress: os.Stdout,
		Now:      time.Now,
	}
}

// Run scrapes every URL in order, then writes all three exports.
// Fetch failures are reported and skipped; only export failures are
// returned as errors.
func (s *Scraper) Run(ctx context.Context, urls []string) (Summary, error) {
	acc := &Accumulator{}
	var summary Summary

	for _, url := range urls {
		fmt.Fprintf(s.Progress, "Scraping: %s\n", url)

		if s.scrapePage(ctx, url, acc) {
			summary.PagesOK++
		} else {
			summary.PagesError++
		}
	}

	summary.Books = acc.Snapshot()

	if err := exporter.WriteAll(s.outputs, summary.Books, s.Now()); err != nil {
		return summary, fmt.Errorf("failed to export books: %w", err)
	}

	fmt.Fprintf(s.Progress, "Scraping completed! Found %d books.\n", len(summary.Books))
	return summary, nil
}

// scrapePage fetches one URL and appends its books to acc. It reports
// whether the fetch succeeded.
func (s *Scraper) scrapePage(ctx context.Context, url string, acc *Accumulator) bool {
	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(s.Progress, "Error fetching the page: %v\n", err)
		return false
	}

	books := s.parser.ExtractBooks(doc)
	if len(books) == 0 {
		log.Printf("Warning: no book entries found on %s\n", url)
	}
	acc.Append(books...)
	return true
}
