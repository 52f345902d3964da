package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Variant is a purchasable option of a product, e.g. a 30ml or 50ml bottle.
// Ids are unique within their product only.
type Variant struct {
	ID    string `json:"id" validate:"required,max=64,excludes=:,ne=base"`
	Label string `json:"label" validate:"required,max=100"`
	Price int64  `json:"price" validate:"gte=0"`
	Stock int    `json:"stock" validate:"gte=0"`
	SKU   string `json:"sku,omitempty" validate:"omitempty,max=64"`
}

// Variants is stored as a JSONB column on products.
type Variants []Variant

// Find returns the variant with the given id, if the product has it.
func (v Variants) Find(id string) (Variant, bool) {
	for _, variant := range v {
		if variant.ID == id {
			return variant, true
		}
	}

	return Variant{}, false
}

// Validate rejects shapes the storefront cannot price.
func (v Variants) Validate() error {
	seen := make(map[string]struct{}, len(v))

	for i, variant := range v {
		if variant.ID == "" || variant.ID == "base" || strings.Contains(variant.ID, ":") {
			return fmt.Errorf("variant %d: invalid id %q", i, variant.ID)
		}
		if variant.Price < 0 || variant.Stock < 0 {
			return fmt.Errorf("variant %q: negative price or stock", variant.ID)
		}
		if _, dup := seen[variant.ID]; dup {
			return fmt.Errorf("variant %q: duplicate id", variant.ID)
		}
		seen[variant.ID] = struct{}{}
	}

	return nil
}

func (v Variants) Value() (driver.Value, error) {
	if v == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v)
}

func (v *Variants) Scan(src any) error {
	var data []byte

	switch s := src.(type) {
	case nil:
		*v = Variants{}
		return nil
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("cannot scan %T into Variants", src)
	}

	var decoded Variants
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("failed to decode variants: %w", err)
	}

	if err := decoded.Validate(); err != nil {
		return errors.Join(ErrInvalidVariants, err)
	}

	if decoded == nil {
		decoded = Variants{}
	}

	*v = decoded

	return nil
}

var ErrInvalidVariants = errors.New("invalid variants")

// Product prices are integers in minor currency units. When Variants is
// non-empty, price and stock of the selected variant take precedence.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Variants    Variants  `json:"variants"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=200"`
	Description string    `json:"description,omitempty" validate:"max=5000"`
	Image       string    `json:"image,omitempty" validate:"omitempty,url"`
	Price       int64     `json:"price" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Variants    []Variant `json:"variants,omitempty" validate:"omitempty,max=50,dive"`
}

type UpdateProductRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image       *string    `json:"image,omitempty" validate:"omitempty,url"`
	Price       *int64     `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Variants    *[]Variant `json:"variants,omitempty" validate:"omitempty,max=50,dive"`
	Active      *bool      `json:"active,omitempty"`
}
