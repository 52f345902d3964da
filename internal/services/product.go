package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/cache"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, page, pageSize int, includeInactive bool) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	// names are plain text, descriptions keep basic formatting
	names        *bluemonday.Policy
	descriptions *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache) ProductService {
	return &productService{
		repo:         repo,
		cache:        cache,
		names:        bluemonday.StrictPolicy(),
		descriptions: bluemonday.UGCPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	variants := models.Variants(req.Variants)
	if err := variants.Validate(); err != nil {
		return nil, errors.ValidationError("Invalid product variants").WithDetail(err.Error())
	}

	product := &models.Product{
		Name:        s.names.Sanitize(req.Name),
		Description: s.descriptions.Sanitize(req.Description),
		Image:       req.Image,
		Price:       req.Price,
		Stock:       req.Stock,
		Variants:    variants,
		Active:      true,
	}

	if product.Variants == nil {
		product.Variants = models.Variants{}
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

// GetProductByID serves the storefront, so deactivated products are reported
// as missing.
func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	key := cache.ProductKey(id)

	var cached models.Product
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "Product cache read failed", slog.String("productId", id.String()), slog.String("error", err.Error()))
	}
	if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.Active {
		return nil, errors.NotFoundError("Product not found")
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		slog.WarnContext(ctx, "Product cache write failed", slog.String("productId", id.String()), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = s.names.Sanitize(*req.Name)
	}
	if req.Description != nil {
		product.Description = s.descriptions.Sanitize(*req.Description)
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Variants != nil {
		variants := models.Variants(*req.Variants)
		if err := variants.Validate(); err != nil {
			return nil, errors.ValidationError("Invalid product variants").WithDetail(err.Error())
		}
		if variants == nil {
			variants = models.Variants{}
		}
		product.Variants = variants
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

// DeleteProduct hides the product from the storefront. Order lines keep
// their snapshot of it.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeactivateProduct(ctx, id); err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, page, pageSize int, includeInactive bool) ([]*models.Product, int, error) {
	products, total, err := s.repo.ListProducts(ctx, page, pageSize, !includeInactive)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.ProductKey(id)); err != nil {
		slog.WarnContext(ctx, "Product cache invalidation failed", slog.String("productId", id.String()), slog.String("error", err.Error()))
	}
}
