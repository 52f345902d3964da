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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegister(t *testing.T) {
	t.Run("Success - User Registered", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		reqBody := models.RegisterRequest{Email: "test@example.com", Password: "P@ssword123!", Name: "Test User"}
		user := &models.User{ID: uuid.New(), Email: reqBody.Email, Name: reqBody.Name, Password: "hash", Role: models.RoleCustomer}
		mockUserService.On("Register", mock.Anything, &reqBody).Return(user, nil).Once()

		body, _ := json.Marshal(reqBody)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader(body), nil)
		rr := httptest.NewRecorder()

		// Act
		userHandler.Register().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotContains(t, rr.Body.String(), "hash")
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Register", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		body := `{"email":"test@example.com","password":"P@ssword123!","name":"Test User"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader([]byte(body)), nil)
		rr := httptest.NewRecorder()

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Short password", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		body := `{"email":"test@example.com","password":"short","name":"Test User"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", bytes.NewReader([]byte(body)), nil)
		rr := httptest.NewRecorder()

		userHandler.Register().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Token: "jwt", ExpiresIn: 3600}, nil).Once()

		body := `{"email":"test@example.com","password":"secret"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewReader([]byte(body)), nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.LoginResponse
		decodeData(t, rr, &got)
		assert.Equal(t, "jwt", got.Token)
	})

	t.Run("Failure - Invalid credentials", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("Login", mock.Anything, mock.Anything).Return(nil, appErrors.UnauthorizedError("Invalid email or password")).Once()

		body := `{"email":"test@example.com","password":"wrong"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", bytes.NewReader([]byte(body)), nil)
		rr := httptest.NewRecorder()

		userHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		mockUserService.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Test User"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil)
		rr := httptest.NewRecorder()

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.User
		decodeData(t, rr, &got)
		assert.Equal(t, userID, got.ID)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)
		rr := httptest.NewRecorder()

		userHandler.Profile().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
