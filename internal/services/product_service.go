package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/pkg/cache"
	"golang-jewelry-backend/pkg/messaging"

	"github.com/google/uuid"
)

// ListPageSize is the fixed storefront page size.
const ListPageSize = 12

type ProductService struct {
	productRepo   repositories.ProductRepository
	categoryRepo  repositories.CategoryRepository
	cache         *cache.RedisCache
	kafkaProducer *messaging.KafkaProducer
	kafkaBrokers  []string
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	cache *cache.RedisCache,
	kafkaProducer *messaging.KafkaProducer,
	kafkaBrokers []string,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		cache:         cache,
		kafkaProducer: kafkaProducer,
		kafkaBrokers:  kafkaBrokers,
	}
}

type ListProductsRequest struct {
	CategorySlug string
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
	Page         int
}

type ProductListResponse struct {
	Products   []models.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

func (s *ProductService) ListProducts(ctx context.Context, req *ListProductsRequest) (*ProductListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	// Try cache first
	cacheKey := fmt.Sprintf("products:%s:%v:%v:%s:%d", req.CategorySlug, req.MinPrice, req.MaxPrice, req.Sort, page)
	var cached ProductListResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	filter := repositories.ProductFilter{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Sort:     req.Sort,
		Limit:    ListPageSize,
		Offset:   (page - 1) * ListPageSize,
	}

	if req.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, req.CategorySlug)
		if err == nil {
			filter.CategoryID = &category.ID
		}
		// unknown slug: no category constraint, matching an unfiltered listing
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + ListPageSize - 1) / ListPageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	response := &ProductListResponse{
		Products:   products,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}

	// Cache for 1 minute; listings change with every admin write
	s.cache.Set(ctx, cacheKey, response, time.Minute)

	return response, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	// Try cache first
	cacheKey := "product:" + productID
	var cachedProduct models.Product
	if err := s.cache.Get(ctx, cacheKey, &cachedProduct); err == nil {
		return &cachedProduct, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, product, time.Minute*30)

	return product, nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.productRepo.GetFeatured(ctx, limit)
}

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Stock         int      `json:"stock" binding:"gte=0"`
	ImageURLs     []string `json:"image_urls"`
	Material      string   `json:"material"`
	Weight        string   `json:"weight"`
	Dimensions    string   `json:"dimensions"`
	CategoryID    string   `json:"category_id" binding:"required"`
	Featured      bool     `json:"featured"`
	Bestseller    bool     `json:"bestseller"`
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, errors.New("category not found")
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock,
		ImageURLs:     models.StringArray(req.ImageURLs),
		Material:      req.Material,
		Weight:        req.Weight,
		Dimensions:    req.Dimensions,
		CategoryID:    categoryID,
		Featured:      req.Featured,
		Bestseller:    req.Bestseller,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publishCatalogEvent("product_created", product)
	s.clearProductCache(product.ID.String())

	return product, nil
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Stock         *int     `json:"stock"`
	ImageURLs     []string `json:"image_urls"`
	Material      *string  `json:"material"`
	Weight        *string  `json:"weight"`
	Dimensions    *string  `json:"dimensions"`
	CategoryID    *string  `json:"category_id"`
	Featured      *bool    `json:"featured"`
	Bestseller    *bool    `json:"bestseller"`
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req *UpdateProductRequest) (*models.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, errors.New("price must be positive")
		}
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("stock cannot be negative")
		}
		product.Stock = *req.Stock
	}
	if req.ImageURLs != nil {
		product.ImageURLs = models.StringArray(req.ImageURLs)
	}
	if req.Material != nil {
		product.Material = *req.Material
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category ID")
		}
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, errors.New("category not found")
		}
		product.CategoryID = categoryID
		product.Category = nil
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Bestseller != nil {
		product.Bestseller = *req.Bestseller
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publishCatalogEvent("product_updated", product)
	s.clearProductCache(productID)

	return product, nil
}

func (s *ProductService) ToggleFeatured(ctx context.Context, productID string) (*models.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	product.Featured = !product.Featured

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publishCatalogEvent("product_updated", product)
	s.clearProductCache(productID)

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return errors.New("invalid product ID")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.kafkaProducer.SendMessage(messaging.TopicCatalogEvents, s.kafkaBrokers, productID, messaging.CatalogEvent{
		Type:      "product_deleted",
		ProductID: productID,
	})
	s.clearProductCache(productID)

	return nil
}

func (s *ProductService) publishCatalogEvent(eventType string, product *models.Product) {
	event := messaging.CatalogEvent{
		Type:      eventType,
		ProductID: product.ID.String(),
		Data:      product,
	}
	s.kafkaProducer.SendMessage(messaging.TopicCatalogEvents, s.kafkaBrokers, product.ID.String(), event)
}

func (s *ProductService) clearProductCache(productID string) {
	ctx := context.Background()
	s.cache.Delete(ctx, "product:"+productID)
}
