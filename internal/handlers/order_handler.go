package handlers

import (
	"net/http"
	"strconv"

	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the routes for order management
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		// The authenticated user's order history
		orders.GET("", h.GetUserOrders)
	}

	admin := router.Group("/admin/orders", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.GET("", h.ListOrders)
		admin.GET("/:id", h.GetOrder)
		admin.PUT("/:id/status", h.UpdateOrderStatus)
		admin.DELETE("/:id", h.DeleteOrder)
	}
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
		offset = o
	}
	return limit, offset
}

// GetUserOrders godoc
// @Summary User order history
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Order
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	limit, offset := pagination(c)

	orders, err := h.orderService.GetUserOrders(c.Request.Context(), middleware.GetUserID(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list orders",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListOrders godoc
// @Summary List all orders
// @Description List all orders across customers (admin only)
// @Tags admin
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} services.OrderListResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, offset := pagination(c)

	resp, err := h.orderService.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list orders",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOrder godoc
// @Summary Get order
// @Description Get a single order with its items (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Order not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order to a new status (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to update order status",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Delete an order and its items (admin only)
// @Tags admin
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to delete order",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Request structs
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
