package models

// CartEntry is one untrusted line of a client cart. Quantity is left loosely
// typed on purpose: clients send numbers, numeric strings or garbage, and the
// checkout path coerces it instead of rejecting the request.
type CartEntry struct {
	Key      string `json:"key"`
	Quantity any    `json:"quantity"`
}

// Cart is the server-side copy of a signed-in customer's cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

type SetCartItemRequest struct {
	Key      string `json:"key" validate:"required,max=200"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=1000"`
}
