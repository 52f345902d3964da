package service

import (
	"context"
	"database/sql"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	GetOrderByNumber(ctx context.Context, number string, claims *models.Claims) (*models.Order, error)
	ListMyOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error)
	ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// GetOrderByNumber returns the order to its owner or to an admin. Guest
// orders have no owner and are only visible to admins.
func (s *orderService) GetOrderByNumber(ctx context.Context, number string, claims *models.Claims) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByNumber(ctx, number)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if claims.Role == models.RoleAdmin {
		return order, nil
	}

	if order.CustomerID == nil || *order.CustomerID != claims.UserID {
		return nil, errors.ForbiddenError("Not authorized to view this order")
	}

	return order, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error) {
	orders, total, err := s.orderRepo.ListOrders(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	current, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if current.Status.IsTerminal() {
		return nil, errors.BadRequestError("Order can no longer change status").
			WithDetail("order is " + string(current.Status))
	}

	order, err := s.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return order, nil
}
