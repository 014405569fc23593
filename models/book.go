package models

// Sentinel values substituted when an entry lacks the corresponding element
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"
)

// Book represents a single title/author pair extracted from a list page
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}
