package book

import (
	"context"

	"trainingapi/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository is the read side of the book collection.
type Repository interface {
	Books(ctx context.Context) ([]entity.Book, error)
	GetBookByIndex(ctx context.Context, i int) (entity.Book, error)
}
