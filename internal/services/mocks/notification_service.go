package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/aaravmahajanofficial/cosmetics-storefront/pkg/sendgrid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *NotificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]*models.Notification), args.Int(1), args.Error(2)
}

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, msg *sendgrid.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
