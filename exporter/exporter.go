// Package exporter serializes scraped books to flat files.
//
// Each format has an Encode function writing to an io.Writer and a Write
// function that creates (or truncates) a file and encodes into it.
package exporter

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"book-scraper/models"
)

// Default destination file names
const (
	DefaultTextFile = "scraped_books.txt"
	DefaultCSVFile  = "scraped_books.csv"
	DefaultJSONFile = "scraped_books.json"
)

// Outputs holds the destination of each exporter
type Outputs struct {
	Text string `yaml:"text"`
	CSV  string `yaml:"csv"`
	JSON string `yaml:"json"`
}

// DefaultOutputs returns the default file names in the working directory
func DefaultOutputs() Outputs {
	return Outputs{
		Text: DefaultTextFile,
		CSV:  DefaultCSVFile,
		JSON: DefaultJSONFile,
	}
}

// WriteAll runs the text, CSV and JSON exporters in that order and
// stops at the first failure
func WriteAll(out Outputs, books []models.Book, now time.Time) error {
	if err := WriteText(out.Text, books, now); err != nil {
		return err
	}
	if err := WriteCSV(out.CSV, books); err != nil {
		return err
	}
	if err := WriteJSON(out.JSON, books); err != nil {
		return err
	}
	return nil
}

// writeFile truncates path and hands it to encode
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.Printf("Wrote %s\n", path)
	return nil
}
