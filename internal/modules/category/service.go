package category

import (
	"errors"
	"fmt"

	"github.com/mockstore/storefront-backend/internal/store"
)

// ErrNotFound is returned when a category id does not resolve.
var ErrNotFound = errors.New("category not found")

// WithCount is a category together with the number of products it holds.
type WithCount struct {
	store.Category
	ProductCount int `json:"product_count"`
}

// Service defines the category read operations.
type Service interface {
	ListCategories() []WithCount
	GetCategory(id int) (WithCount, error)
}

type service struct{ repo Repository }

// NewService creates a category service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListCategories() []WithCount {
	categories := s.repo.ListCategories()
	out := make([]WithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, WithCount{Category: c, ProductCount: s.repo.CategoryProductCount(c.ID)})
	}
	return out
}

func (s *service) GetCategory(id int) (WithCount, error) {
	c, ok := s.repo.GetCategory(id)
	if !ok {
		return WithCount{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return WithCount{Category: c, ProductCount: s.repo.CategoryProductCount(id)}, nil
}
