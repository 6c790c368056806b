package handlers

import (
	"net/http"
	"strconv"

	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService ProductServiceInterface
}

func NewProductHandler(productService ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the routes for the product catalog
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	products := router.Group("/products")
	{
		// Browse the catalog with filters and sorting
		products.GET("", h.ListProducts)
		// Featured products for the storefront home page
		products.GET("/featured", h.GetFeatured)
		// Product detail
		products.GET("/:id", h.GetProduct)
	}

	admin := router.Group("/admin/products", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		// Create a product
		admin.POST("", h.CreateProduct)
		// Update a product
		admin.PUT("/:id", h.UpdateProduct)
		// Toggle the featured flag
		admin.POST("/:id/toggle-featured", h.ToggleFeatured)
		// Delete a product
		admin.DELETE("/:id", h.DeleteProduct)
	}
}

// ListProducts godoc
// @Summary List products
// @Description List products with optional category, price range filters and sorting
// @Tags products
// @Produce json
// @Param category query string false "Category slug"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "Sort order" Enums(price-asc, price-desc, newest, bestseller)
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} services.ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	req := &services.ListProductsRequest{
		CategorySlug: c.Query("category"),
		Sort:         c.Query("sort"),
		Page:         1,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		req.Page = page
	}
	if min, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		req.MinPrice = &min
	}
	if max, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		req.MaxPrice = &max
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetFeatured godoc
// @Summary Featured products
// @Description Get the products flagged as featured
// @Tags products
// @Produce json
// @Param limit query int false "Maximum number of products"
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products/featured [get]
func (h *ProductHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.productService.GetFeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get featured products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product
// @Description Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param product body services.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to create product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing product (admin only). Only the provided fields change.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body services.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to update product",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ToggleFeatured godoc
// @Summary Toggle featured flag
// @Description Flip whether a product is featured (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id}/toggle-featured [post]
func (h *ProductHandler) ToggleFeatured(c *gin.Context) {
	product, err := h.productService.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to toggle featured flag",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to delete product",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
