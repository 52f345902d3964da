package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether the order has left the fulfilment flow.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderLine is a snapshot taken when the order was built. Later catalog
// changes never rewrite it.
type OrderLine struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	CartKey   string    `json:"cart_key"`
	ProductID uuid.UUID `json:"product_id"`
	VariantID *string   `json:"variant_id,omitempty"`
	Title     string    `json:"title"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
	Image     string    `json:"image,omitempty"`
	SKU       string    `json:"sku,omitempty"`
}

type Customer struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=6,max=32"`
	Address string `json:"address" validate:"required,min=5,max=500"`
}

type Order struct {
	ID         uuid.UUID   `json:"id"`
	Number     string      `json:"number"`
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"`
	Customer   Customer    `json:"customer"`
	Note       string      `json:"note,omitempty"`
	Status     OrderStatus `json:"status"`
	Total      int64       `json:"total"`
	Currency   string      `json:"currency"`
	Lines      []OrderLine `json:"lines"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type CheckoutRequest struct {
	Items    []CartEntry `json:"items"`
	Customer Customer    `json:"customer" validate:"required"`
	Note     string      `json:"note,omitempty" validate:"max=1000"`
}

type CartCheckoutRequest struct {
	Customer Customer `json:"customer" validate:"required"`
	Note     string   `json:"note,omitempty" validate:"max=1000"`
}

type CheckoutResponse struct {
	Order       *Order   `json:"order"`
	OrderedKeys []string `json:"ordered_keys"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}
