package handlers

import (
	"net/http"

	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterRoutes registers the routes for address management
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	addresses := router.Group("/addresses", authMiddleware.AuthRequired())
	{
		addresses.GET("", h.GetAddresses)
		addresses.POST("", h.CreateAddress)
		addresses.PUT("/:id", h.UpdateAddress)
		addresses.DELETE("/:id", h.DeleteAddress)
	}
}

// GetAddresses godoc
// @Summary List addresses
// @Description List the authenticated user's saved addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} models.Address
// @Failure 401 {object} ErrorResponse
// @Router /addresses [get]
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.addressService.GetAddresses(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list addresses",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// CreateAddress godoc
// @Summary Create address
// @Description Save a new address for the authenticated user
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body services.CreateAddressRequest true "Address data"
// @Success 201 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req services.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	address, err := h.addressService.CreateAddress(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create address",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, address)
}

// UpdateAddress godoc
// @Summary Update address
// @Description Update one of the authenticated user's addresses
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param address body services.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req services.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	address, err := h.addressService.UpdateAddress(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to update address",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, address)
}

// DeleteAddress godoc
// @Summary Delete address
// @Description Delete one of the authenticated user's addresses
// @Tags addresses
// @Produce json
// @Param id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	if err := h.addressService.DeleteAddress(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to delete address",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
