package exporter

import (
	"encoding/json"
	"io"

	"book-scraper/models"
)

// EncodeJSON writes the books as an indented array. Non-ASCII and HTML
// characters are kept literal.
func EncodeJSON(w io.Writer, books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(books)
}

// WriteJSON saves the array to path, overwriting it
func WriteJSON(path string, books []models.Book) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeJSON(w, books)
	})
}
