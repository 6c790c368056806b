package services

import (
	"context"
	"errors"
	"testing"

	"golang-jewelry-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	bySlug map[string]*models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *models.Category) error { return nil }

func (f *fakeCategoryRepo) GetByID(context.Context, uuid.UUID) (*models.Category, error) {
	return nil, errors.New("record not found")
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (f *fakeCategoryRepo) List(context.Context) ([]models.Category, error) { return nil, nil }
func (f *fakeCategoryRepo) Update(context.Context, *models.Category) error  { return nil }
func (f *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error         { return nil }

func newProductServiceForTest(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo) *ProductService {
	// nil cache degrades to a permanent miss, kafka is never hit by reads
	return NewProductService(productRepo, categoryRepo, nil, nil, nil)
}

func TestListProductsTranslatesFilter(t *testing.T) {
	ctx := context.Background()
	ringsID := uuid.New()
	productRepo := newFakeProductRepo()
	categoryRepo := &fakeCategoryRepo{bySlug: map[string]*models.Category{
		"rings": {ID: ringsID, Name: "Rings", Slug: "rings"},
	}}
	svc := newProductServiceForTest(productRepo, categoryRepo)

	min, max := 1000.0, 50000.0
	_, err := svc.ListProducts(ctx, &ListProductsRequest{
		CategorySlug: "rings",
		MinPrice:     &min,
		MaxPrice:     &max,
		Sort:         "price-asc",
		Page:         3,
	})
	require.NoError(t, err)

	filter := productRepo.lastFilter
	require.NotNil(t, filter.CategoryID)
	assert.Equal(t, ringsID, *filter.CategoryID)
	assert.Equal(t, min, *filter.MinPrice)
	assert.Equal(t, max, *filter.MaxPrice)
	assert.Equal(t, "price-asc", filter.Sort)
	assert.Equal(t, ListPageSize, filter.Limit)
	assert.Equal(t, 2*ListPageSize, filter.Offset)
}

func TestListProductsUnknownSlugIsUnfiltered(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	svc := newProductServiceForTest(productRepo, &fakeCategoryRepo{bySlug: map[string]*models.Category{}})

	_, err := svc.ListProducts(ctx, &ListProductsRequest{CategorySlug: "no-such-slug"})
	require.NoError(t, err)

	assert.Nil(t, productRepo.lastFilter.CategoryID)
}

func TestListProductsPageMath(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	productRepo.listTotal = 25 // 3 pages of 12
	svc := newProductServiceForTest(productRepo, &fakeCategoryRepo{bySlug: map[string]*models.Category{}})

	resp, err := svc.ListProducts(ctx, &ListProductsRequest{Page: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page, "page below one is normalized")
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 0, productRepo.lastFilter.Offset)
}

func TestGetFeaturedProductsDefaultLimit(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	svc := newProductServiceForTest(productRepo, &fakeCategoryRepo{bySlug: map[string]*models.Category{}})

	_, err := svc.GetFeaturedProducts(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, productRepo.lastFeaturedLimit)

	_, err = svc.GetFeaturedProducts(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, productRepo.lastFeaturedLimit)
}
