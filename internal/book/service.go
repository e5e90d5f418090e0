package book

import (
	"context"

	"trainingapi/internal/entity"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book paired with its position, in store order.
func (s *Service) List(ctx context.Context) ([]entity.IndexedBook, error) {
	books, err := s.repo.Books(ctx)
	if err != nil {
		return nil, err
	}
	return entity.WithIDs(books), nil
}

// GetByID returns the book whose position equals id.
func (s *Service) GetByID(ctx context.Context, id int) (entity.IndexedBook, error) {
	b, err := s.repo.GetBookByIndex(ctx, id)
	if err != nil {
		return entity.IndexedBook{}, err
	}
	return entity.IndexedBook{ID: id, Book: b}, nil
}
