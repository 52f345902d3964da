package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	SetItem(ctx context.Context, userID uuid.UUID, req *models.SetCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, key string) (*models.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	c, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	return c, nil
}

// SetItem stores the requested quantity clamped to what is in stock. A
// quantity that clamps to zero removes the line.
func (s *cartService) SetItem(ctx context.Context, userID uuid.UUID, req *models.SetCartItemRequest) (*models.Cart, error) {
	key := cart.ParseKey(req.Key)

	productID, err := uuid.Parse(key.ProductID)
	if err != nil {
		return nil, errors.BadRequestError("Invalid cart key").WithDetail("product id must be a UUID")
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.Active {
		return nil, errors.NotFoundError("Product not found")
	}

	normalized := cart.MakeKey(productID.String(), key.VariantID)
	stock := checkout.StockFor(product, key.VariantID)
	quantity := cart.ClampQuantity(req.Quantity, &stock)

	if quantity == 0 {
		err = s.cartRepo.RemoveItems(ctx, userID, normalized)
	} else {
		err = s.cartRepo.SetItem(ctx, userID, normalized, quantity)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, key string) (*models.Cart, error) {
	if err := s.cartRepo.RemoveItems(ctx, userID, normalizeKey(key)); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return s.GetCart(ctx, userID)
}

// normalizeKey gives the form SetItem stores: lower case product uuid and an
// explicit base variant.
func normalizeKey(raw string) string {
	key := cart.ParseKey(raw)
	if id, err := uuid.Parse(key.ProductID); err == nil {
		key.ProductID = id.String()
	}

	return key.String()
}
