package handlers

import (
	"net/http"

	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BannerHandler struct {
	bannerService *services.BannerService
}

func NewBannerHandler(bannerService *services.BannerService) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
	}
}

// RegisterRoutes registers the routes for storefront banners
func (h *BannerHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// Active banners for the storefront home page
	router.GET("/banners", h.GetActiveBanners)

	admin := router.Group("/admin/banners", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.GET("", h.ListBanners)
		admin.POST("", h.CreateBanner)
		admin.PUT("/:id", h.UpdateBanner)
		admin.DELETE("/:id", h.DeleteBanner)
	}
}

// GetActiveBanners godoc
// @Summary Active banners
// @Description Get the banners currently shown on the storefront, in display order
// @Tags banners
// @Produce json
// @Success 200 {array} models.Banner
// @Failure 500 {object} ErrorResponse
// @Router /banners [get]
func (h *BannerHandler) GetActiveBanners(c *gin.Context) {
	banners, err := h.bannerService.GetActiveBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get banners",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// ListBanners godoc
// @Summary List all banners
// @Description List every banner including inactive ones (admin only)
// @Tags admin
// @Produce json
// @Success 200 {array} models.Banner
// @Failure 403 {object} ErrorResponse
// @Router /admin/banners [get]
func (h *BannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerService.ListBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list banners",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// CreateBanner godoc
// @Summary Create banner
// @Description Create a storefront banner (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param banner body services.CreateBannerRequest true "Banner data"
// @Success 201 {object} models.Banner
// @Failure 400 {object} ErrorResponse
// @Router /admin/banners [post]
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	banner, err := h.bannerService.CreateBanner(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create banner",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// UpdateBanner godoc
// @Summary Update banner
// @Description Update a storefront banner (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param banner body services.UpdateBannerRequest true "Fields to update"
// @Success 200 {object} models.Banner
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/banners/{id} [put]
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	var req services.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	banner, err := h.bannerService.UpdateBanner(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to update banner",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, banner)
}

// DeleteBanner godoc
// @Summary Delete banner
// @Description Delete a storefront banner (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "Banner ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	if err := h.bannerService.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to delete banner",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
