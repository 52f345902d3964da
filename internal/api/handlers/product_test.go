package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/testutils"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// decodeData unmarshals the envelope and then its data field into dst.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	if dst != nil && resp.Data != nil {
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, dst))
	}

	return &resp
}

func TestProductHandler_CreateProduct(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		reqBody := models.CreateProductRequest{Name: "Rose Serum", Price: 2500, Stock: 4}
		created := &models.Product{ID: uuid.New(), Name: "Rose Serum", Price: 2500, Stock: 4, Active: true}
		mockService.On("CreateProduct", mock.Anything, &reqBody).Return(created, nil).Once()

		body, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/v1/admin/products", bytes.NewReader(body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var product models.Product
		resp := decodeData(t, rr, &product)
		assert.True(t, resp.Success)
		assert.Equal(t, created.ID, product.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		body, _ := json.Marshal(models.CreateProductRequest{Name: "X", Price: -1})
		req := testutils.CreateTestRequestWithRole(http.MethodPost, "/api/v1/admin/products", bytes.NewReader(body), adminID, models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.CreateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		mockService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)
		id := uuid.New()

		mockService.On("GetProductByID", mock.Anything, id).Return(&models.Product{ID: id, Name: "Kajal"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/"+id.String(), nil, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var product models.Product
		decodeData(t, rr, &product)
		assert.Equal(t, "Kajal", product.Name)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)
		id := uuid.New()

		mockService.On("GetProductByID", mock.Anything, id).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/", nil, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.GetProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	adminID := uuid.New()
	id := uuid.New()

	t.Run("Update - Success", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("UpdateProduct", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
			return req.Price != nil && *req.Price == 3000 && req.Name == nil
		})).Return(&models.Product{ID: id, Price: 3000}, nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodPut, "/", bytes.NewReader([]byte(`{"price":3000}`)), adminID, models.RoleAdmin, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.UpdateProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Delete - Success", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("DeleteProduct", mock.Anything, id).Return(nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodDelete, "/", nil, adminID, models.RoleAdmin, map[string]string{"id": id.String()})
		rr := httptest.NewRecorder()

		handler.DeleteProduct().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("Storefront - Active only with pagination", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		products := []*models.Product{{ID: uuid.New(), Name: "Blush"}}
		mockService.On("ListProducts", mock.Anything, 2, 5, false).Return(products, 6, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?page=2&pageSize=5", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var page models.PaginatedResponse
		decodeData(t, rr, &page)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.PageSize)
	})

	t.Run("Admin - Includes inactive, defaults applied", func(t *testing.T) {
		mockService := new(mocks.ProductService)
		handler := handlers.NewProductHandler(mockService)

		mockService.On("ListProducts", mock.Anything, 1, 10, true).Return([]*models.Product{}, 0, nil).Once()

		req := testutils.CreateTestRequestWithRole(http.MethodGet, "/api/v1/admin/products?pageSize=1000", nil, uuid.New(), models.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.AdminListProducts().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}
