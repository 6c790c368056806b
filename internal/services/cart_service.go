package services

import (
	"context"
	"errors"

	"golang-jewelry-backend/internal/cart"
	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"

	"github.com/google/uuid"
)

// CartService applies mutations to a client-identified cart. Each call
// loads the persisted lines, mutates them in memory and persists
// best-effort; a failed write never fails the request, the returned view
// reflects the in-memory state. Product data is snapshotted at add time
// and never revalidated afterwards.
type CartService struct {
	productRepo repositories.ProductRepository
	slot        cart.Slot
}

func NewCartService(productRepo repositories.ProductRepository, slot cart.Slot) *CartService {
	return &CartService{
		productRepo: productRepo,
		slot:        slot,
	}
}

// CartView is the contract the presentation layer consumes.
type CartView struct {
	Items      []cart.Line `json:"items"`
	ItemsCount int         `json:"items_count"`
	Subtotal   float64     `json:"subtotal"`
}

func cartView(c *cart.Cart) *CartView {
	return &CartView{
		Items:      c.Lines(),
		ItemsCount: c.ItemsCount(),
		Subtotal:   c.Subtotal(),
	}
}

func (s *CartService) persistence(cartID string) *cart.Persistence {
	return cart.NewPersistence(s.slot, cartID)
}

func (s *CartService) GetCart(ctx context.Context, cartID string) *CartView {
	return cartView(s.persistence(cartID).Load(ctx))
}

// AddItem snapshots the product and merges qty into the cart. The only
// error is an unknown product: everything after the snapshot follows the
// silent-clamp policy, so adding an out-of-stock product returns the
// unchanged cart rather than a failure.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, qty int) (*CartView, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	product, err := s.productRepo.GetByID(ctx, pid)
	if err != nil {
		return nil, errors.New("product not found")
	}

	p := s.persistence(cartID)
	c := p.Load(ctx)
	c.Add(snapshotOf(product), qty)
	p.Save(ctx, c)

	return cartView(c), nil
}

func (s *CartService) UpdateItem(ctx context.Context, cartID, productID string, qty int) *CartView {
	p := s.persistence(cartID)
	c := p.Load(ctx)
	c.UpdateQuantity(productID, qty)
	p.Save(ctx, c)
	return cartView(c)
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) *CartView {
	p := s.persistence(cartID)
	c := p.Load(ctx)
	c.Remove(productID)
	p.Save(ctx, c)
	return cartView(c)
}

func (s *CartService) ClearCart(ctx context.Context, cartID string) *CartView {
	p := s.persistence(cartID)
	c := p.Load(ctx)
	c.Clear()
	p.Save(ctx, c)
	return cartView(c)
}

func snapshotOf(p *models.Product) cart.ProductSnapshot {
	stock := p.Stock
	return cart.ProductSnapshot{
		ID:        p.ID.String(),
		Name:      p.Name,
		Price:     p.Price,
		Stock:     &stock,
		ImageURLs: []string(p.ImageURLs),
	}
}
