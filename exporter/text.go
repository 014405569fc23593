package exporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"book-scraper/models"
)

const textTimeLayout = "2006-01-02 15:04:05"

var (
	headerRule = strings.Repeat("=", 50)
	recordRule = strings.Repeat("-", 30)
)

// EncodeText writes the human-readable report: a timestamped header
// followed by a three-line block per book
func EncodeText(w io.Writer, books []models.Book, generated time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Scraped Book Data - %s\n", generated.Format(textTimeLayout))
	fmt.Fprintf(bw, "%s\n\n", headerRule)

	for _, book := range books {
		fmt.Fprintf(bw, "Title: %s\n", book.Title)
		fmt.Fprintf(bw, "Author: %s\n", book.Author)
		fmt.Fprintf(bw, "%s\n", recordRule)
	}

	return bw.Flush()
}

// WriteText saves the report to path, overwriting it
func WriteText(path string, books []models.Book, generated time.Time) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeText(w, books, generated)
	})
}
