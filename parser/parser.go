package parser

import (
	"fmt"
	"strings"

	"book-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Selectors locates book entries and their fields in a list page
type Selectors struct {
	Entry  string `yaml:"entry"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// DefaultSelectors matches the Goodreads list markup
func DefaultSelectors() Selectors {
	return Selectors{
		Entry:  `tr[itemtype="http://schema.org/Book"]`,
		Title:  "a.bookTitle",
		Author: "a.authorName",
	}
}

// Parser extracts book records from HTML
type Parser struct {
	selectors Selectors
}

// NewParser creates a new Parser instance
func NewParser(selectors Selectors) *Parser {
	return &Parser{
		selectors: selectors,
	}
}

// ParseHTML extracts books from raw HTML content
func (p *Parser) ParseHTML(htmlContent string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return p.ExtractBooks(doc), nil
}

// ExtractBooks returns one record per matching entry, in document order.
// A nil document yields no records.
func (p *Parser) ExtractBooks(doc *goquery.Document) []models.Book {
	if doc == nil {
		return nil
	}

	var books []models.Book
	doc.Find(p.selectors.Entry).Each(func(i int, s *goquery.Selection) {
		books = append(books, p.extractBook(s))
	})

	return books
}

// extractBook reads the title and author of a single entry
func (p *Parser) extractBook(s *goquery.Selection) models.Book {
	return models.Book{
		Title:  textOr(s.Find(p.selectors.Title), models.UnknownTitle),
		Author: textOr(s.Find(p.selectors.Author), models.UnknownAuthor),
	}
}

// textOr returns the trimmed text of the first match, or fallback when
// nothing matched. A present but empty element yields "".
func textOr(s *goquery.Selection, fallback string) string {
	first := s.First()
	if first.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(first.Text())
}
