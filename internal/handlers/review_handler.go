package handlers

import (
	"net/http"

	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the routes for product reviews
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	reviews := router.Group("/products/:id/reviews")
	{
		// Latest reviews for a product
		reviews.GET("", h.GetProductReviews)
		// Submit or replace the user's review
		reviews.POST("", authMiddleware.AuthRequired(), h.SubmitReview)
	}
}

// GetProductReviews godoc
// @Summary Product reviews
// @Description Get the latest reviews for a product
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} models.Review
// @Failure 500 {object} ErrorResponse
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetProductReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get reviews",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// SubmitReview godoc
// @Summary Submit review
// @Description Create or replace the authenticated user's review of a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body services.SubmitReviewRequest true "Review data"
// @Success 200 {object} models.Review
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	review, err := h.reviewService.SubmitReview(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to submit review",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}
