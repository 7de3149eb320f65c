package status

import (
	"context"
	"fmt"
)

// Service contains business logic for status checks. There is none beyond
// pass-through persistence; the type exists to keep the handler wired the
// same way as every other feature package.
type Service struct {
	repo *Repository
}

// NewService creates a new status Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Record stores a status-check event for the named client.
func (s *Service) Record(ctx context.Context, clientName string) (*Check, error) {
	c, err := s.repo.Create(ctx, clientName)
	if err != nil {
		return nil, fmt.Errorf("record status check: %w", err)
	}
	return c, nil
}

// Recent returns the most recent status checks.
func (s *Service) Recent(ctx context.Context) ([]Check, error) {
	return s.repo.List(ctx)
}
