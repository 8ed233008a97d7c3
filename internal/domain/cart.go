package domain

// CartEntry is the raw (productId, quantity) pair the cart service stores
// per user. Quantity is always positive: the service represents removal by
// dropping the entry, never by sending qty 0 back.
type CartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// LineItem is a cart entry joined with its full product record, ready for
// display. Line items are derived state: rebuilt from scratch on every
// reconciliation pass and never persisted or patched in place.
type LineItem struct {
	Product  Product
	Quantity int
}

// Cost is the line total, cost * quantity.
func (li LineItem) Cost() float64 {
	return li.Product.Cost * float64(li.Quantity)
}
