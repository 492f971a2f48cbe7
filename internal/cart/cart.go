package cart

import "math"

// LineItem is a single menu item held in a cart together with its quantity.
// JSON tags follow the camelCase convention used elsewhere in the project.
type LineItem struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Cart is an ordered collection of line items. IDs are unique within a cart
// and insertion order is preserved for display.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Totals is the price breakdown derived from a cart. It is recomputed from
// the items on every read and never stored.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Taxes       float64 `json:"taxes"`
	Total       float64 `json:"total"`
}

// AddItem appends the item, or bumps the quantity when the id already exists.
// Quantities below 1 are treated as 1.
func (c *Cart) AddItem(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity replaces the quantity of the matching item. Quantities below 1
// are rejected (no-op): decrementing past 1 never removes an item, removal is
// its own operation. An unknown id is also a no-op so stale UI updates stay
// harmless.
func (c *Cart) SetQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op, so the operation is idempotent.
func (c *Cart) Remove(id int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal returns the sum of unitPrice*quantity over all items.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}

// ComputeTotals derives the full price breakdown from the current items.
// Pure function of cart state and the two parameters; every figure is
// rounded to cents.
func (c *Cart) ComputeTotals(deliveryFee, taxRate float64) Totals {
	subtotal := c.Subtotal()
	taxes := subtotal * taxRate
	return Totals{
		Subtotal:    round2(subtotal),
		DeliveryFee: round2(deliveryFee),
		Taxes:       round2(taxes),
		Total:       round2(subtotal + deliveryFee + taxes),
	}
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the internal slice.
func (c *Cart) Clone() Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
