package services

import (
	"context"
	"errors"
	"time"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/pkg/cache"

	"github.com/google/uuid"
)

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	cache        *cache.RedisCache
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, cache *cache.RedisCache) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cache:        cache,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	cacheKey := "categories"
	var cached []models.Category
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, categories, time.Minute*15)

	return categories, nil
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceRange returns the catalog price bounds used by the filter
// sidebar.
func (s *CategoryService) PriceRange(ctx context.Context) (*PriceRangeResponse, error) {
	min, max, err := s.productRepo.PriceRange(ctx)
	if err != nil {
		return nil, err
	}
	return &PriceRangeResponse{Min: min, Max: max}, nil
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	existing, _ := s.categoryRepo.GetBySlug(ctx, req.Slug)
	if existing != nil {
		return nil, errors.New("category with this slug already exists")
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.clearCategoryCache()

	return category, nil
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req *UpdateCategoryRequest) (*models.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.clearCategoryCache()

	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return errors.New("invalid category ID")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.clearCategoryCache()

	return nil
}

func (s *CategoryService) clearCategoryCache() {
	s.cache.Delete(context.Background(), "categories")
}
