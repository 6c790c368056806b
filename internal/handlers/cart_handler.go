package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// cartIDHeader carries the client cart identifier. Carts belong to the
// browser, not the account, so these routes work without authentication.
const cartIDHeader = "X-Cart-ID"

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		// Get the cart
		cart.GET("", h.GetCart)
		// Add item to cart
		cart.POST("/items", h.AddItem)
		// Update item quantity
		cart.PUT("/items/:product_id", h.UpdateItem)
		// Remove item from cart
		cart.DELETE("/items/:product_id", h.RemoveItem)
		// Clear cart
		cart.DELETE("", h.ClearCart)
	}
}

func cartID(c *gin.Context) (string, bool) {
	id := c.GetHeader(cartIDHeader)
	if id == "" {
		id = c.Query("cart_id")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Cart ID is required",
			Message: "Provide the cart identifier in the X-Cart-ID header",
		})
		return "", false
	}
	return id, true
}

// GetCart godoc
// @Summary Get cart
// @Description Get the cart identified by the X-Cart-ID header
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.cartService.GetCart(c.Request.Context(), id))
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart, merging with any existing line. Quantities are clamped to stock; adding an out-of-stock product returns the unchanged cart.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Cart item data"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	view, err := h.cartService.AddItem(c.Request.Context(), id, req.ProductID, qty)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line. Values are clamped to [1, stock]; a line whose stock has reached zero is removed. Unknown products leave the cart unchanged.
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param item body UpdateCartItemRequest true "New quantity"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	view := h.cartService.UpdateItem(c.Request.Context(), id, c.Param("product_id"), req.Quantity)
	c.JSON(http.StatusOK, view)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove a product from the cart. Removing a product that is not in the cart returns the unchanged cart.
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	view := h.cartService.RemoveItem(c.Request.Context(), id, c.Param("product_id"))
	c.JSON(http.StatusOK, view)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove all items from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	id, ok := cartID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.cartService.ClearCart(c.Request.Context(), id))
}

// Request structs
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"` // defaults to 1 when omitted
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
