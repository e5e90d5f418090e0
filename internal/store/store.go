package store

import (
	"context"
	"fmt"

	"trainingapi/internal/entity"
)

// Store holds the compiled-in collections. It is built once at startup and
// never mutated afterwards, so it is safe to share between requests.
type Store struct {
	books []entity.Book
	films []entity.Film
}

// New returns a Store seeded with the default book and film literals.
func New() *Store {
	return NewWith(defaultBooks, defaultFilms)
}

// NewWith returns a Store over copies of the given collections.
func NewWith(books []entity.Book, films []entity.Film) *Store {
	s := &Store{
		books: make([]entity.Book, len(books)),
		films: make([]entity.Film, len(films)),
	}
	copy(s.books, books)
	for i, f := range films {
		f.Genres = append([]string(nil), f.Genres...)
		s.films[i] = f
	}
	return s
}

func (s *Store) Books(ctx context.Context) ([]entity.Book, error) {
	out := make([]entity.Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

// GetBookByIndex returns the book at position i. Callers decide how i was
// obtained; the store only checks the range.
func (s *Store) GetBookByIndex(ctx context.Context, i int) (entity.Book, error) {
	if i < 0 || i >= len(s.books) {
		return entity.Book{}, fmt.Errorf("index %d: %w", i, entity.ErrNotFound)
	}
	return s.books[i], nil
}

func (s *Store) Films(ctx context.Context) ([]entity.Film, error) {
	out := make([]entity.Film, len(s.films))
	for i, f := range s.films {
		f.Genres = append([]string(nil), f.Genres...)
		out[i] = f
	}
	return out, nil
}
