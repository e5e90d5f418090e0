package film

import (
	"context"

	"trainingapi/internal/entity"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the films exactly as the repository holds them.
func (s *Service) List(ctx context.Context) ([]entity.Film, error) {
	return s.repo.Films(ctx)
}
