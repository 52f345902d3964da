package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// carts expire after a month without changes
const cartTTL = 30 * 24 * time.Hour

// CartRepository stores a signed-in customer's cart as a Redis hash keyed by
// cart key, with the quantity as value.
type CartRepository interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	SetItem(ctx context.Context, userID uuid.UUID, key string, quantity int) error
	RemoveItems(ctx context.Context, userID uuid.UUID, keys ...string) error
}

type cartRepository struct {
	client redis.Cmdable
}

func NewCartRepo(client redis.Cmdable) CartRepository {
	return &cartRepository{client: client}
}

func cartKey(userID uuid.UUID) string {
	return "cart:" + userID.String()
}

func (r *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", userID, err)
	}

	cart := &models.Cart{Items: make([]models.CartItem, 0, len(fields))}

	for key, raw := range fields {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			continue
		}
		cart.Items = append(cart.Items, models.CartItem{Key: key, Quantity: qty})
	}

	// hash order is random
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].Key < cart.Items[j].Key
	})

	return cart, nil
}

// SetItem stores a positive quantity. Callers delete with RemoveItems instead
// of writing zero.
func (r *cartRepository) SetItem(ctx context.Context, userID uuid.UUID, key string, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItems(ctx, userID, key)
	}

	redisKey := cartKey(userID)

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, redisKey, key, quantity)
		pipe.Expire(ctx, redisKey, cartTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store cart item %s: %w", key, err)
	}

	return nil
}

func (r *cartRepository) RemoveItems(ctx context.Context, userID uuid.UUID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.HDel(ctx, cartKey(userID), keys...).Err(); err != nil {
		return fmt.Errorf("failed to remove cart items: %w", err)
	}

	return nil
}
