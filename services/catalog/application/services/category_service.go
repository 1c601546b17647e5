package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	"github.com/ghuser/posledger/services/catalog/domain/models"
	"github.com/ghuser/posledger/services/catalog/domain/repositories"
)

// CategoryService orchestrates category CRUD.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService returns a CategoryService wired with the given repository.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create validates and persists a new category.
func (s *CategoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	c, err := models.NewCategory(name, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// GetByID retrieves a category.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// List returns one page of categories plus the total count.
func (s *CategoryService) List(ctx context.Context, page int) ([]*models.Category, int, error) {
	cats, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return cats, total, nil
}

// Update renames a category or changes its description.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name, description string) (*models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	updated, err := models.NewCategory(name, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}
	c.Name = updated.Name
	c.Description = updated.Description
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category that no item references.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
