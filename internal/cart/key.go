// Package cart holds the pieces of cart handling that must behave the same on
// every path that touches a cart: key encoding and quantity coercion.
package cart

import "strings"

const (
	// Separator joins product and variant ids inside a cart key.
	Separator = ":"
	// BaseVariant marks a cart line bought without selecting a variant.
	BaseVariant = "base"
)

// Key is the decoded form of a cart key.
type Key struct {
	ProductID string
	VariantID *string
}

// MakeKey encodes a product and optional variant into a flat cart key.
// productID must not contain Separator.
func MakeKey(productID string, variantID *string) string {
	variant := BaseVariant
	if variantID != nil {
		variant = *variantID
	}

	return productID + Separator + variant
}

// ParseKey splits on the first separator. A key without a separator is taken
// as a bare product id.
func ParseKey(key string) Key {
	productID, variant, found := strings.Cut(key, Separator)
	if !found || variant == "" || variant == BaseVariant {
		return Key{ProductID: productID}
	}

	return Key{ProductID: productID, VariantID: &variant}
}

// String re-encodes the key.
func (k Key) String() string {
	return MakeKey(k.ProductID, k.VariantID)
}
