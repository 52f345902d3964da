package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/cache"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	cache     cache.Cache
	jwtKey    []byte
	jwtExpiry time.Duration
}

func NewUserService(repo repository.UserRepository, cache cache.Cache, jwtKey []byte, jwtExpiry time.Duration) UserService {
	if jwtExpiry <= 0 {
		jwtExpiry = 24 * time.Hour
	}

	return &userService{
		repo:      repo,
		cache:     cache,
		jwtKey:    jwtKey,
		jwtExpiry: jwtExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.DatabaseError("Failed to check email").WithError(err)
	}
	if existing != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleCustomer,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

// Login never tells the caller whether the email exists.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil && !stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid email or password")
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtExpiry.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := cache.UserKey(id)

	var cached models.User
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "User cache read failed", slog.String("userId", id.String()), slog.String("error", err.Error()))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if err := s.cache.Set(ctx, key, user, 0); err != nil {
		slog.WarnContext(ctx, "User cache write failed", slog.String("userId", id.String()), slog.String("error", err.Error()))
	}

	return user, nil
}
