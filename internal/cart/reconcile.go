// Package cart holds the client-side cart logic: the pure reconciliation
// of raw server entries against a catalog snapshot, and the controller
// that mutates the server-held cart.
package cart

import "github.com/mahitha-1310/qkart/internal/domain"

// Reconcile joins raw cart entries with their product records and returns
// display-ready line items. It is a pure function: same inputs, same
// output, any number of times.
//
// The server's entry order is preserved. An entry whose product id is
// missing from the catalog snapshot is a dangling reference and is dropped
// without error; an empty catalog therefore yields an empty result even
// for a non-empty cart.
func Reconcile(entries []domain.CartEntry, catalog []domain.Product) []domain.LineItem {
	// Index the catalog up front; probing per entry would be a linear
	// scan each time and does not scale with large catalogs.
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	items := make([]domain.LineItem, 0, len(entries))
	for _, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok {
			continue
		}
		items = append(items, domain.LineItem{Product: p, Quantity: e.Quantity})
	}
	return items
}

// IsInCart reports whether any entry references the given product id.
// The controller uses it as the duplicate-add guard; reconciliation never
// needs it.
func IsInCart(entries []domain.CartEntry, productID string) bool {
	for _, e := range entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// TotalCost sums cost * quantity over the line items.
func TotalCost(items []domain.LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Cost()
	}
	return total
}
