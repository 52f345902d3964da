package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) SetItem(ctx context.Context, userID uuid.UUID, key string, quantity int) error {
	args := m.Called(ctx, userID, key, quantity)
	return args.Error(0)
}

func (m *CartRepository) RemoveItems(ctx context.Context, userID uuid.UUID, keys ...string) error {
	args := m.Called(ctx, userID, keys)
	return args.Error(0)
}
