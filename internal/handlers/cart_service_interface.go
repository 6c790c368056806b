package handlers

import (
	"context"

	"golang-jewelry-backend/internal/services"
)

// CartServiceInterface defines what the cart handler needs from the
// cart service. Declared here so the handler can be tested against a
// fake implementation.
type CartServiceInterface interface {
	GetCart(ctx context.Context, cartID string) *services.CartView
	AddItem(ctx context.Context, cartID, productID string, qty int) (*services.CartView, error)
	UpdateItem(ctx context.Context, cartID, productID string, qty int) *services.CartView
	RemoveItem(ctx context.Context, cartID, productID string) *services.CartView
	ClearCart(ctx context.Context, cartID string) *services.CartView
}
