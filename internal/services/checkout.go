package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// order numbers are random, a collision is retried with a fresh one
const maxOrderNumberAttempts = 3

const (
	channelGuest = "guest"
	channelCart  = "cart"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	CheckoutCart(ctx context.Context, userID uuid.UUID, req *models.CartCheckoutRequest) (*models.CheckoutResponse, error)
}

type OrderBuilder interface {
	Build(ctx context.Context, entries []models.CartEntry) (checkout.Result, error)
}

type checkoutService struct {
	builder       OrderBuilder
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	notifications NotificationService
	policy        *bluemonday.Policy
	currency      string
	now           func() time.Time
}

func NewCheckoutService(builder OrderBuilder, orderRepo repository.OrderRepository, cartRepo repository.CartRepository,
	notifications NotificationService, currency string) CheckoutService {
	return &checkoutService{
		builder:       builder,
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		notifications: notifications,
		policy:        bluemonday.StrictPolicy(),
		currency:      currency,
		now:           time.Now,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	return s.placeOrder(ctx, nil, req.Items, req.Customer, req.Note, channelGuest)
}

// CheckoutCart orders the stored cart and then clears only the lines that
// made it into the order. Lines that were dropped stay in the cart.
func (s *checkoutService) CheckoutCart(ctx context.Context, userID uuid.UUID, req *models.CartCheckoutRequest) (*models.CheckoutResponse, error) {
	stored, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load cart").WithError(err)
	}

	entries := make([]models.CartEntry, 0, len(stored.Items))
	for _, item := range stored.Items {
		entries = append(entries, models.CartEntry{Key: item.Key, Quantity: item.Quantity})
	}

	resp, err := s.placeOrder(ctx, &userID, entries, req.Customer, req.Note, channelCart)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItems(ctx, userID, resp.OrderedKeys...); err != nil {
		slog.WarnContext(ctx, "Order placed but cart was not cleared",
			slog.String("orderNumber", resp.Order.Number),
			slog.String("error", err.Error()))
	}

	return resp, nil
}

func (s *checkoutService) placeOrder(ctx context.Context, customerID *uuid.UUID, entries []models.CartEntry,
	customer models.Customer, note, channel string) (*models.CheckoutResponse, error) {
	result, err := s.builder.Build(ctx, entries)
	if err != nil {
		return nil, errors.DatabaseError("Failed to price the cart").WithError(err)
	}

	if result.Failed() {
		metrics.OrderBuildFailed(string(result.Reason))

		switch result.Reason {
		case checkout.ReasonEmptyCart:
			return nil, errors.EmptyCartError("Your cart is empty")
		default:
			return nil, errors.NothingToOrderError("None of the items in your cart can be ordered right now")
		}
	}

	order := &models.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Customer: models.Customer{
			Name:    s.policy.Sanitize(customer.Name),
			Email:   customer.Email,
			Phone:   s.policy.Sanitize(customer.Phone),
			Address: s.policy.Sanitize(customer.Address),
		},
		Note:     s.policy.Sanitize(note),
		Status:   models.OrderStatusPending,
		Total:    result.Total,
		Currency: s.currency,
		Lines:    result.Lines,
	}

	for i := range order.Lines {
		order.Lines[i].ID = uuid.New()
	}

	if err := s.createWithUniqueNumber(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrderPlaced(channel)

	if err := s.notifications.SendOrderConfirmation(ctx, order); err != nil {
		slog.WarnContext(ctx, "Order confirmation email failed",
			slog.String("orderNumber", order.Number),
			slog.String("error", err.Error()))
	}

	return &models.CheckoutResponse{
		Order:       order,
		OrderedKeys: result.OrderedKeys(),
	}, nil
}

func (s *checkoutService) createWithUniqueNumber(ctx context.Context, order *models.Order) error {
	var err error

	for range maxOrderNumberAttempts {
		order.Number = checkout.NewOrderNumber(s.now())

		err = s.orderRepo.CreateOrder(ctx, order)
		if !stdErrors.Is(err, repository.ErrDuplicateOrderNumber) {
			break
		}
	}

	if err != nil {
		return errors.DatabaseError("Failed to create order").WithError(err)
	}

	return nil
}
