// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/your-org/darling-boutique/internal/config"
)

// Service handles catalog business logic
type Service struct {
	repo   Repository
	config *config.Config
}

// NewService creates a new catalog service
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// GetProducts retrieves the display list for the given filter/sort state.
// The full product set is fetched and run through the pipeline; the filter
// itself is transient and never stored.
func (s *Service) GetProducts(ctx context.Context, f Filter) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return Apply(products, f), nil
}

// GetProduct retrieves a single product by id
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// GetCategories returns the category tree
func (s *Service) GetCategories() []Category {
	return Categories()
}
