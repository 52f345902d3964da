package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// OrderBuilder stands in for checkout.Builder.
type OrderBuilder struct {
	mock.Mock
}

func (m *OrderBuilder) Build(ctx context.Context, entries []models.CartEntry) (checkout.Result, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(checkout.Result), args.Error(1)
}
