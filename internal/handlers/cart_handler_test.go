package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-jewelry-backend/internal/cart"
	"golang-jewelry-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartService struct {
	lastCartID    string
	lastProductID string
	lastQty       int
	addErr        error
	view          *services.CartView
}

func (s *stubCartService) GetCart(_ context.Context, cartID string) *services.CartView {
	s.lastCartID = cartID
	return s.view
}

func (s *stubCartService) AddItem(_ context.Context, cartID, productID string, qty int) (*services.CartView, error) {
	s.lastCartID, s.lastProductID, s.lastQty = cartID, productID, qty
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.view, nil
}

func (s *stubCartService) UpdateItem(_ context.Context, cartID, productID string, qty int) *services.CartView {
	s.lastCartID, s.lastProductID, s.lastQty = cartID, productID, qty
	return s.view
}

func (s *stubCartService) RemoveItem(_ context.Context, cartID, productID string) *services.CartView {
	s.lastCartID, s.lastProductID = cartID, productID
	return s.view
}

func (s *stubCartService) ClearCart(_ context.Context, cartID string) *services.CartView {
	s.lastCartID = cartID
	return s.view
}

func setupCartRouter(svc CartServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewCartHandler(svc).RegisterRoutes(api)
	return router
}

func emptyView() *services.CartView {
	return &services.CartView{Items: []cart.Line{}}
}

func TestGetCartRequiresCartID(t *testing.T) {
	router := setupCartRouter(&stubCartService{view: emptyView()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartReadsHeader(t *testing.T) {
	svc := &stubCartService{view: emptyView()}
	router := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-ID", "browser-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "browser-42", svc.lastCartID)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc := &stubCartService{view: emptyView()}
	router := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-ID", "c1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", svc.lastProductID)
	assert.Equal(t, 1, svc.lastQty)
}

func TestAddItemUnknownProductIs404(t *testing.T) {
	svc := &stubCartService{addErr: assert.AnError}
	router := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"missing","quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-ID", "c1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateItemAcceptsZeroQuantity(t *testing.T) {
	svc := &stubCartService{view: emptyView()}
	router := setupCartRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/p1",
		strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-ID", "c1")
	router.ServeHTTP(w, req)

	// zero is meaningful input, the service clamps it
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1", svc.lastProductID)
	assert.Equal(t, 0, svc.lastQty)
}

func TestRemoveAndClearReturnCartView(t *testing.T) {
	view := &services.CartView{
		Items:      []cart.Line{},
		ItemsCount: 0,
		Subtotal:   0,
	}
	svc := &stubCartService{view: view}
	router := setupCartRouter(svc)

	for _, path := range []string{"/api/v1/cart/items/p1", "/api/v1/cart"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.Header.Set("X-Cart-ID", "c1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body services.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 0, body.ItemsCount)
	}
}
