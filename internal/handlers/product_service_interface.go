package handlers

import (
	"context"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/services"
)

// ProductServiceInterface defines what the product handler needs from
// the product service.
type ProductServiceInterface interface {
	ListProducts(ctx context.Context, req *services.ListProductsRequest) (*services.ProductListResponse, error)
	GetProductByID(ctx context.Context, productID string) (*models.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, req *services.UpdateProductRequest) (*models.Product, error)
	ToggleFeatured(ctx context.Context, productID string) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
