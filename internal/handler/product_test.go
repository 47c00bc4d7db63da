package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/middleware"
	"github.com/minicart/minicart-api/internal/repository"
	"github.com/minicart/minicart-api/internal/service"
)

const laptopJSON = `{"name":"Laptop","price":999.99,"description":"High-performance laptop","stock":10}`

// newProductRouter wires the product routes exactly as cmd/api does:
// public reads, admin-gated writes.
func newProductRouter(t *testing.T) (*gin.Engine, func(t *testing.T, username, password string) string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore()
	authSvc := service.NewAuthService(repository.NewUserRepository(store), "test-secret", time.Hour)
	productSvc := service.NewProductService(repository.NewProductRepository(store))

	ctx := context.Background()
	require.NoError(t, authSvc.EnsureAdmin(ctx, "admin", "admin@example.com", "admin123"))
	require.NoError(t, authSvc.Signup(ctx, dto.SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "pw",
	}))

	productH := NewProductHandler(productSvc)

	router := gin.New()
	products := router.Group("/products")
	products.GET("", productH.List)
	products.GET("/:id", productH.GetByID)

	admin := products.Group("", middleware.Auth(authSvc), middleware.AdminOnly())
	admin.POST("", productH.Create)
	admin.PUT("/:id", productH.Update)
	admin.DELETE("/:id", productH.Delete)

	login := func(t *testing.T, username, password string) string {
		t.Helper()
		resp, err := authSvc.Login(ctx, dto.LoginRequest{Username: username, Password: password})
		require.NoError(t, err)
		return resp.AccessToken
	}
	return router, login
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProductWrites_NonAdminForbidden(t *testing.T) {
	router, login := newProductRouter(t)
	token := login(t, "alice", "pw")

	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodPost, "/products", token, laptopJSON).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodPut, "/products/1", token, laptopJSON).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodDelete, "/products/1", token, "").Code)
}

func TestProductWrites_AdminAllowed(t *testing.T) {
	router, login := newProductRouter(t)
	token := login(t, "admin", "admin123")

	assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/products", token, laptopJSON).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodPut, "/products/1", token, laptopJSON).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodDelete, "/products/1", token, "").Code)
}

func TestProductWrites_NoToken(t *testing.T) {
	router, _ := newProductRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodPost, "/products", "", laptopJSON).Code)
}

func TestProductReads_Public(t *testing.T) {
	router, login := newProductRouter(t)
	token := login(t, "admin", "admin123")
	require.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/products", token, laptopJSON).Code)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/products", "", "").Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/products/1", "", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/products/42", "", "").Code)
}
