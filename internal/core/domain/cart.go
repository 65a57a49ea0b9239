package domain

import "encoding/json"

// CartItem is a row in a user's cart. Email is the owner and is always set
// from verified claims. Attributes holds whatever product reference the
// client sent (productId, name, price, quantity...).
type CartItem struct {
	ID         string
	Email      string
	Attributes map[string]any
}

// reserved keys are owned by the server and never taken from attributes.
var reservedCartKeys = []string{"_id", "email"}

// NewCartItem builds an item owned by owner. Client-supplied _id and email
// attributes are discarded.
func NewCartItem(owner string, attrs map[string]any) *CartItem {
	clean := make(map[string]any, len(attrs))
	for k, v := range attrs {
		clean[k] = v
	}
	for _, k := range reservedCartKeys {
		delete(clean, k)
	}
	return &CartItem{Email: owner, Attributes: clean}
}

// MarshalJSON flattens the item into a single object, the shape clients
// stored it in.
func (c CartItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Attributes)+2)
	for k, v := range c.Attributes {
		out[k] = v
	}
	out["_id"] = c.ID
	out["email"] = c.Email
	return json.Marshal(out)
}
