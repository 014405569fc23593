package scraper

import (
	"sync"

	"book-scraper/models"
)

// Accumulator is an append-only, ordered collection of books for one run
type Accumulator struct {
	mu    sync.Mutex
	books []models.Book
}

// Append adds books in the given order
func (a *Accumulator) Append(books ...models.Book) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.books = append(a.books, books...)
}

// Len returns the number of accumulated books
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.books)
}

// Snapshot returns a copy of the accumulated books. It is never nil.
func (a *Accumulator) Snapshot() []models.Book {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Book, len(a.books))
	copy(out, a.books)
	return out
}
