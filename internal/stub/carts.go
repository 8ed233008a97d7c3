package stub

import (
	"sync"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// Carts keeps one raw cart per username, in memory. Entry order is the
// insertion order, which is the order clients see on every GET.
type Carts struct {
	mu    sync.Mutex
	carts map[string][]domain.CartEntry
}

func NewCarts() *Carts {
	return &Carts{carts: make(map[string][]domain.CartEntry)}
}

func (c *Carts) Get(username string) []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked(username)
}

// Upsert sets the quantity for one product and returns the full new cart.
// A quantity of zero or less removes the entry; absence is how the
// protocol represents "not in cart".
func (c *Carts) Upsert(username, productID string, quantity int) []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.carts[username]
	idx := -1
	for i, e := range entries {
		if e.ProductID == productID {
			idx = i
			break
		}
	}

	switch {
	case quantity <= 0:
		if idx >= 0 {
			entries = append(entries[:idx], entries[idx+1:]...)
		}
	case idx >= 0:
		entries[idx].Quantity = quantity
	default:
		entries = append(entries, domain.CartEntry{ProductID: productID, Quantity: quantity})
	}

	c.carts[username] = entries
	return c.copyLocked(username)
}

func (c *Carts) copyLocked(username string) []domain.CartEntry {
	entries := c.carts[username]
	out := make([]domain.CartEntry, len(entries))
	copy(out, entries)
	return out
}
