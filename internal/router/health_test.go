package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mrdaebak/internal/auth"
	"mrdaebak/internal/cart"
	"mrdaebak/internal/catalog"
	"mrdaebak/internal/kv"
	"mrdaebak/internal/order"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	backend := kv.NewMemory()
	authService := auth.NewService(auth.NewInMemoryCustomerRepository())
	orderService := order.NewService(order.NewHTTPClient(), authService)

	r := NewRouter(Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(),
		Cart:    cart.NewHandler(backend),
		Order:   order.NewHandler(orderService, backend),
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	// Act
	r.ServeHTTP(w, req)

	// Assert
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCartRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := kv.NewMemory()
	authService := auth.NewService(auth.NewInMemoryCustomerRepository())
	orderService := order.NewService(order.NewHTTPClient(), authService)

	r := NewRouter(Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(),
		Cart:    cart.NewHandler(backend),
		Order:   order.NewHandler(orderService, backend),
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
