// Package checkout turns an untrusted client cart into server-priced order
// lines. Prices and stock are always read from the catalog; nothing the
// client sends besides keys and quantities is looked at.
package checkout

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/google/uuid"
)

const (
	DefaultMaxEntries    = 200
	DefaultMaxProductIDs = 100
)

type FailureReason string

const (
	ReasonNone           FailureReason = ""
	ReasonEmptyCart      FailureReason = "empty_cart"
	ReasonNothingToOrder FailureReason = "nothing_to_order"
)

// ProductLookup is the single batched read the builder performs per build.
type ProductLookup interface {
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
}

// Result holds either lines with a positive total or a failure reason, never both.
type Result struct {
	Lines  []models.OrderLine
	Total  int64
	Reason FailureReason

	// keys folded into an earlier line for the same product and variant
	merged []string
}

func (r Result) Failed() bool {
	return r.Reason != ReasonNone
}

// OrderedKeys lists the cart keys that made it into the order, including
// alternate spellings that were folded into another line.
func (r Result) OrderedKeys() []string {
	keys := make([]string, 0, len(r.Lines)+len(r.merged))
	for _, line := range r.Lines {
		keys = append(keys, line.CartKey)
	}

	return append(keys, r.merged...)
}

type Builder struct {
	products      ProductLookup
	maxEntries    int
	maxProductIDs int
}

func NewBuilder(products ProductLookup, maxEntries, maxProductIDs int) *Builder {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxProductIDs <= 0 {
		maxProductIDs = DefaultMaxProductIDs
	}

	return &Builder{
		products:      products,
		maxEntries:    maxEntries,
		maxProductIDs: maxProductIDs,
	}
}

// lineSource identifies what a line draws stock from.
type lineSource struct {
	productID uuid.UUID
	variantID string
}

type sanitizedEntry struct {
	key       string
	productID uuid.UUID
	variantID *string
	quantity  int
}

func (b *Builder) Build(ctx context.Context, entries []models.CartEntry) (Result, error) {
	sanitized := b.sanitize(entries)

	ids := b.productIDs(sanitized)
	if len(sanitized) == 0 || len(ids) == 0 {
		return Result{Lines: []models.OrderLine{}, Reason: ReasonEmptyCart}, nil
	}

	products, err := b.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load products for order: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		if p != nil {
			byID[p.ID] = p
		}
	}

	lines := make([]models.OrderLine, 0, len(sanitized))
	bySource := make(map[lineSource]int, len(sanitized))
	var merged []string

	for _, entry := range sanitized {
		product, ok := byID[entry.productID]
		if !ok {
			continue
		}

		line, stock, ok := resolveLine(entry, product)
		if !ok {
			continue
		}

		// Different spellings of one key (case, bare id, unknown variant)
		// share a single stock ceiling.
		src := lineSource{productID: line.ProductID}
		if line.VariantID != nil {
			src.variantID = *line.VariantID
		}

		if i, seen := bySource[src]; seen {
			existing := &lines[i]
			existing.Quantity = min(existing.Quantity+line.Quantity, stock)
			existing.LineTotal = existing.UnitPrice * int64(existing.Quantity)
			merged = append(merged, entry.key)
			continue
		}

		bySource[src] = len(lines)
		lines = append(lines, line)
	}

	var total int64
	for _, line := range lines {
		total += line.LineTotal
	}

	if len(lines) == 0 || total <= 0 {
		return Result{Lines: []models.OrderLine{}, Reason: ReasonNothingToOrder}, nil
	}

	return Result{Lines: lines, Total: total, merged: merged}, nil
}

// sanitize drops empty keys and non-positive quantities, then caps the list.
// Keys whose product segment is not a uuid can never match a product and are
// dropped here as well.
func (b *Builder) sanitize(entries []models.CartEntry) []sanitizedEntry {
	out := make([]sanitizedEntry, 0, min(len(entries), b.maxEntries))

	for _, e := range entries {
		if len(out) == b.maxEntries {
			break
		}
		if e.Key == "" {
			continue
		}

		qty := cart.ClampQuantity(e.Quantity, nil)
		if qty <= 0 {
			continue
		}

		key := cart.ParseKey(e.Key)
		productID, err := uuid.Parse(key.ProductID)
		if err != nil {
			continue
		}

		out = append(out, sanitizedEntry{
			key:       e.Key,
			productID: productID,
			variantID: key.VariantID,
			quantity:  qty,
		})
	}

	return out
}

func (b *Builder) productIDs(entries []sanitizedEntry) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	ids := make([]uuid.UUID, 0, min(len(entries), b.maxProductIDs))

	for _, e := range entries {
		if len(ids) == b.maxProductIDs {
			break
		}
		if _, ok := seen[e.productID]; ok {
			continue
		}
		seen[e.productID] = struct{}{}
		ids = append(ids, e.productID)
	}

	return ids
}

func resolveLine(entry sanitizedEntry, product *models.Product) (models.OrderLine, int, bool) {
	var (
		price     = product.Price
		stock     = product.Stock
		title     = product.Name
		sku       string
		variantID *string
	)

	if entry.variantID != nil {
		if v, ok := product.Variants.Find(*entry.variantID); ok {
			price = v.Price
			stock = v.Stock
			title = fmt.Sprintf("%s (%s)", product.Name, v.Label)
			sku = v.SKU
			id := v.ID
			variantID = &id
		}
	}

	if stock <= 0 || price <= 0 {
		return models.OrderLine{}, 0, false
	}

	qty := max(1, cart.ClampQuantity(entry.quantity, &stock))

	return models.OrderLine{
		CartKey:   entry.key,
		ProductID: product.ID,
		VariantID: variantID,
		Title:     title,
		UnitPrice: price,
		Quantity:  qty,
		LineTotal: price * int64(qty),
		Image:     product.Image,
		SKU:       sku,
	}, stock, true
}

// StockFor is the stock a line for variantID is clamped to. Unknown variants
// fall back to the base product, as in Build.
func StockFor(product *models.Product, variantID *string) int {
	if variantID != nil {
		if v, ok := product.Variants.Find(*variantID); ok {
			return v.Stock
		}
	}

	return product.Stock
}
