package services

import (
	"context"
	"errors"
	"fmt"
	"trivia/internal/models/db_models"
	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, limit int) ([]response_models.CategoryResponse, error)
	GetCategory(ctx context.Context, id uint) (response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (response_models.CategoryResponse, error)
	CreateCategories(ctx context.Context, reqs []request_models.CreateCategoryRequest) ([]response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uint, req request_models.UpdateCategoryRequest) (response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) (response_models.CategoryDeletedResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, limit int) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx, limit)
	if err != nil {
		return nil, storeError(err)
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.CategoryResponse{}, storeError(err)
	}
	if category == nil {
		return response_models.CategoryResponse{}, categoryNotFound(id)
	}
	return toCategoryResponse(*category), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (response_models.CategoryResponse, error) {
	category := db_models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		return response_models.CategoryResponse{}, nameConflict(err, req.Name)
	}
	return toCategoryResponse(category), nil
}

func (s *CategoryService) CreateCategories(ctx context.Context, reqs []request_models.CreateCategoryRequest) ([]response_models.CategoryResponse, error) {
	categories := make([]db_models.Category, 0, len(reqs))
	for _, req := range reqs {
		categories = append(categories, db_models.Category{Name: req.Name})
	}
	if len(categories) == 0 {
		return []response_models.CategoryResponse{}, nil
	}

	if err := s.categoryRepo.CreateMany(ctx, categories); err != nil {
		return nil, nameConflict(err, "")
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, req request_models.UpdateCategoryRequest) (response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.UpdateName(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, utils.ErrCategoryNotFound) {
			return response_models.CategoryResponse{}, categoryNotFound(id)
		}
		return response_models.CategoryResponse{}, nameConflict(err, req.Name)
	}
	return toCategoryResponse(*category), nil
}

// DeleteCategory refuses to delete a category that still has clues.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) (response_models.CategoryDeletedResponse, error) {
	category, err := s.categoryRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, utils.ErrCategoryNotFound):
		return response_models.CategoryDeletedResponse{}, categoryNotFound(id)
	case errors.Is(err, utils.ErrCategoryHasClues):
		return response_models.CategoryDeletedResponse{}, fmt.Errorf("%w: delete its clues before deleting category %d", err, id)
	case err != nil:
		return response_models.CategoryDeletedResponse{}, storeError(err)
	}
	return response_models.CategoryDeletedResponse{Name: category.Name}, nil
}

func categoryNotFound(id uint) error {
	return fmt.Errorf("%w: id %d", utils.ErrCategoryNotFound, id)
}

func nameConflict(err error, name string) error {
	if !errors.Is(err, utils.ErrCategoryNameTaken) {
		return storeError(err)
	}
	if name == "" {
		return err
	}
	return fmt.Errorf("%w: %q", err, name)
}

func toCategoryResponse(category db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
