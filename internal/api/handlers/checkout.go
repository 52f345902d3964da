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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//
//	@Summary		Place a guest order
//	@Description	Prices the submitted cart against the catalog and places an order. Unknown, inactive and out of stock lines are dropped; quantities are clamped to stock. The response lists the cart keys that were ordered so the client can clear them.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest		true	"Cart lines and customer details"
//	@Success		201			{object}	models.CheckoutResponse		"Order placed"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid input"
//	@Failure		422			{object}	response.ErrorResponse		"EMPTY_CART or NOTHING_TO_ORDER"
//	@Failure		429			{object}	response.ErrorResponse		"Too many checkout attempts"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		resp, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Int("entries", len(req.Items)), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed",
			slog.String("orderNumber", resp.Order.Number),
			slog.Int("lines", len(resp.Order.Lines)),
			slog.Int64("total", resp.Order.Total))
		response.Success(w, http.StatusCreated, resp)
	}
}

// CheckoutCart godoc
//
//	@Summary		Order the stored cart
//	@Description	Places an order from the signed-in customer's stored cart. Only the ordered lines are removed from the cart afterwards.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CartCheckoutRequest	true	"Customer details"
//	@Success		201			{object}	models.CheckoutResponse		"Order placed"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid input"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		422			{object}	response.ErrorResponse		"EMPTY_CART or NOTHING_TO_ORDER"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/checkout [post]
func (h *CheckoutHandler) CheckoutCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.CartCheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		resp, err := h.checkoutService.CheckoutCart(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Cart checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed from cart", slog.String("orderNumber", resp.Order.Number))
		response.Success(w, http.StatusCreated, resp)
	}
}
