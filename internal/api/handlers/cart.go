package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	service "github.com/aaravmahajanofficial/cosmetics-storefront/internal/services"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the stored cart
//	@Description	Returns the signed-in customer's cart, sorted by cart key.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.Cart				"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load cart", slog.String("userID", claims.UserID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// SetItem godoc
//
//	@Summary		Set a cart line
//	@Description	Sets the quantity for a cart key ("<productId>:<variantId>" or "<productId>:base"). The quantity is clamped to stock and a result of zero removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.SetCartItemRequest	true	"Cart key and quantity"
//	@Success		200		{object}	models.Cart					"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid input or cart key"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items [put]
func (h *CartHandler) SetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.SetCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart item input")
			return
		}

		cart, err := h.cartService.SetItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to update cart", slog.String("key", req.Key), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart updated", slog.String("key", req.Key), slog.Int("items", len(cart.Items)))
		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			key	path		string					true	"Cart key"
//	@Success		200	{object}	models.Cart				"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Missing cart key"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items/{key} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		key := r.PathValue("key")
		if key == "" {
			response.Error(w, errors.BadRequestError("Cart key is required"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.UserID, key)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.String("key", key), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
