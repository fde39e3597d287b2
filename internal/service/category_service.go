package service

import (
	"context"
	"strings"

	"sangha/internal/models"
	"sangha/internal/repository"
	"sangha/internal/validation"
)

type CategoryService struct {
	categories repository.CategoryRepository
	users      repository.UserRepository
}

type CreateCategoryInput struct {
	UserID      uint
	Name        string
	Slug        string
	Description string
}

func NewCategoryService(categories repository.CategoryRepository, users repository.UserRepository) *CategoryService {
	return &CategoryService{categories: categories, users: users}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categories.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

// Create adds a category. Only admins may create categories.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, models.NewForbiddenError("only admins can create categories")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > 80 {
		return nil, models.NewValidationError("Name too long (max 80 characters)")
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = validation.Slugify(name)
	}
	if err := validation.ValidateCategorySlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := &models.Category{Name: name, Slug: slug, Description: strings.TrimSpace(in.Description)}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
