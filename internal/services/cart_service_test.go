package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlot struct {
	data map[string][]byte
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{data: map[string][]byte{}}
}

func (f *fakeSlot) Get(_ context.Context, key string, dest interface{}) error {
	b, ok := f.data[key]
	if !ok {
		return errors.New("key not found")
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeSlot) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

type fakeProductRepo struct {
	products          map[uuid.UUID]*models.Product
	lastFilter        repositories.ProductFilter
	listTotal         int64
	lastFeaturedLimit int
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uuid.UUID]*models.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	// return a copy, like a real row scan would
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	f.lastFilter = filter
	return nil, f.listTotal, nil
}

func (f *fakeProductRepo) GetFeatured(_ context.Context, limit int) ([]models.Product, error) {
	f.lastFeaturedLimit = limit
	return nil, nil
}

func (f *fakeProductRepo) PriceRange(context.Context) (float64, float64, error) {
	return 0, 0, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func testProduct(price float64, stock int) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Name:      "Solitaire Ring",
		Price:     price,
		Stock:     stock,
		ImageURLs: models.StringArray{"https://cdn.example/ring.jpg"},
	}
}

func TestAddItemSnapshotsProductAtAddTime(t *testing.T) {
	ctx := context.Background()
	product := testProduct(45000, 15)
	repo := newFakeProductRepo(product)
	svc := NewCartService(repo, newFakeSlot())

	view, err := svc.AddItem(ctx, "c1", product.ID.String(), 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, float64(45000), view.Subtotal)

	// catalog price change after add must not affect the cart
	product.Price = 99000
	repo.products[product.ID] = product

	view, err = svc.AddItem(ctx, "c1", product.ID.String(), 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, float64(45000), view.Items[0].Product.Price)
	assert.Equal(t, float64(90000), view.Subtotal)
}

func TestAddItemMergesAcrossRequests(t *testing.T) {
	ctx := context.Background()
	product := testProduct(45000, 15)
	svc := NewCartService(newFakeProductRepo(product), newFakeSlot())

	_, err := svc.AddItem(ctx, "c1", product.ID.String(), 1)
	require.NoError(t, err)

	view, err := svc.AddItem(ctx, "c1", product.ID.String(), 20)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 15, view.Items[0].Quantity)
	assert.Equal(t, float64(675000), view.Subtotal)
	assert.Equal(t, 15, view.ItemsCount)
}

func TestAddItemOutOfStockReturnsUnchangedCart(t *testing.T) {
	ctx := context.Background()
	inStock := testProduct(45000, 15)
	outOfStock := testProduct(1000, 0)
	svc := NewCartService(newFakeProductRepo(inStock, outOfStock), newFakeSlot())

	_, err := svc.AddItem(ctx, "c1", inStock.ID.String(), 1)
	require.NoError(t, err)

	view, err := svc.AddItem(ctx, "c1", outOfStock.ID.String(), 1)
	require.NoError(t, err, "out-of-stock add is a silent no-op, not an error")

	require.Len(t, view.Items, 1)
	assert.Equal(t, inStock.ID.String(), view.Items[0].Product.ID)
	assert.Equal(t, float64(45000), view.Subtotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeProductRepo(), newFakeSlot())

	_, err := svc.AddItem(ctx, "c1", uuid.NewString(), 1)
	assert.Error(t, err)

	_, err = svc.AddItem(ctx, "c1", "not-a-uuid", 1)
	assert.Error(t, err)
}

func TestUpdateRemoveClearAreErrorFree(t *testing.T) {
	ctx := context.Background()
	product := testProduct(45000, 15)
	svc := NewCartService(newFakeProductRepo(product), newFakeSlot())

	_, err := svc.AddItem(ctx, "c1", product.ID.String(), 3)
	require.NoError(t, err)

	view := svc.UpdateItem(ctx, "c1", product.ID.String(), 0)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity, "zero clamps to one while stock remains")

	view = svc.UpdateItem(ctx, "c1", "unknown-product", 5)
	assert.Len(t, view.Items, 1)

	view = svc.RemoveItem(ctx, "c1", "unknown-product")
	assert.Len(t, view.Items, 1)

	view = svc.RemoveItem(ctx, "c1", product.ID.String())
	assert.Len(t, view.Items, 0)
	assert.Equal(t, float64(0), view.Subtotal)

	view = svc.ClearCart(ctx, "c1")
	assert.Len(t, view.Items, 0)
}

func TestCartsAreIsolatedByCartID(t *testing.T) {
	ctx := context.Background()
	product := testProduct(100, 10)
	svc := NewCartService(newFakeProductRepo(product), newFakeSlot())

	_, err := svc.AddItem(ctx, "alice", product.ID.String(), 2)
	require.NoError(t, err)

	view := svc.GetCart(ctx, "bob")
	assert.Len(t, view.Items, 0)

	view = svc.GetCart(ctx, "alice")
	assert.Equal(t, 2, view.ItemsCount)
}

func TestCartSurvivesReload(t *testing.T) {
	ctx := context.Background()
	product := testProduct(45000, 15)
	slot := newFakeSlot()
	repo := newFakeProductRepo(product)

	svc := NewCartService(repo, slot)
	_, err := svc.AddItem(ctx, "c1", product.ID.String(), 2)
	require.NoError(t, err)

	// fresh service over the same slot, as after a process restart
	reloaded := NewCartService(repo, slot).GetCart(ctx, "c1")
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
	assert.Equal(t, float64(90000), reloaded.Subtotal)
}

func TestNilSlotCartStillResponds(t *testing.T) {
	ctx := context.Background()
	product := testProduct(100, 10)
	svc := NewCartService(newFakeProductRepo(product), nil)

	view, err := svc.AddItem(ctx, "c1", product.ID.String(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.ItemsCount, "mutation succeeds even without a persistence backend")

	// nothing persisted, so the next read starts empty
	assert.Len(t, svc.GetCart(ctx, "c1").Items, 0)
}
