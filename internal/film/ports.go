package film

import (
	"context"

	"trainingapi/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=film

type Repository interface {
	Films(ctx context.Context) ([]entity.Film, error)
}
