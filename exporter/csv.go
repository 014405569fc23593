package exporter

import (
	"encoding/csv"
	"io"

	"book-scraper/models"
)

var csvHeader = []string{"title", "author"}

// EncodeCSV writes a title,author header followed by one row per book.
// Rows end in CRLF.
func EncodeCSV(w io.Writer, books []models.Book) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, book := range books {
		if err := cw.Write([]string{book.Title, book.Author}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSV saves the table to path, overwriting it
func WriteCSV(path string, books []models.Book) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeCSV(w, books)
	})
}
