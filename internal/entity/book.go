package entity

import "errors"

// ErrNotFound is returned when no record sits at the requested position.
var ErrNotFound = errors.New("book not found")

type Book struct {
	Author     string `json:"author"`
	Country    string `json:"country"`
	Language   string `json:"language"`
	Link       string `json:"link"`
	Pages      int    `json:"pages"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	CopiesSold int    `json:"copiesSold"`
}

// IndexedBook is a Book together with its position in the collection it was
// read from. The id is never stored; it only holds for the current process.
type IndexedBook struct {
	ID int `json:"id"`
	Book
}

// WithIDs pairs every book with its zero-based position.
func WithIDs(books []Book) []IndexedBook {
	out := make([]IndexedBook, 0, len(books))
	for i, b := range books {
		out = append(out, IndexedBook{ID: i, Book: b})
	}
	return out
}
