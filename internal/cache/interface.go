package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache stores JSON encoded read models. A miss is reported as found=false
// with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	ProductKeyPrefix = "product"
	UserKeyPrefix    = "user"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

func ProductKey(id uuid.UUID) string {
	return Key(ProductKeyPrefix, id.String())
}

func UserKey(id uuid.UUID) string {
	return Key(UserKeyPrefix, id.String())
}
