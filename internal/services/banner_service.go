package services

import (
	"context"
	"errors"
	"time"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerService struct {
	bannerRepo repositories.BannerRepository
	cache      *cache.RedisCache
}

func NewBannerService(bannerRepo repositories.BannerRepository, cache *cache.RedisCache) *BannerService {
	return &BannerService{
		bannerRepo: bannerRepo,
		cache:      cache,
	}
}

func (s *BannerService) GetActiveBanners(ctx context.Context) ([]models.Banner, error) {
	cacheKey := "banners:active"
	var cached []models.Banner
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	banners, err := s.bannerRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, banners, time.Minute*10)

	return banners, nil
}

func (s *BannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return s.bannerRepo.List(ctx)
}

type CreateBannerRequest struct {
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url" binding:"required"`
	Link      string `json:"link"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

func (s *BannerService) CreateBanner(ctx context.Context, req *CreateBannerRequest) (*models.Banner, error) {
	banner := &models.Banner{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		Link:      req.Link,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}

	s.clearBannerCache()

	return banner, nil
}

type UpdateBannerRequest struct {
	Title     *string `json:"title"`
	Subtitle  *string `json:"subtitle"`
	ImageURL  *string `json:"image_url"`
	Link      *string `json:"link"`
	IsActive  *bool   `json:"is_active"`
	SortOrder *int    `json:"sort_order"`
}

func (s *BannerService) UpdateBanner(ctx context.Context, bannerID string, req *UpdateBannerRequest) (*models.Banner, error) {
	id, err := primitive.ObjectIDFromHex(bannerID)
	if err != nil {
		return nil, errors.New("invalid banner ID")
	}

	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("banner not found")
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Subtitle != nil {
		banner.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.Link != nil {
		banner.Link = *req.Link
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	s.clearBannerCache()

	return banner, nil
}

func (s *BannerService) DeleteBanner(ctx context.Context, bannerID string) error {
	id, err := primitive.ObjectIDFromHex(bannerID)
	if err != nil {
		return errors.New("invalid banner ID")
	}

	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.clearBannerCache()

	return nil
}

func (s *BannerService) clearBannerCache() {
	s.cache.Delete(context.Background(), "banners:active")
}
