package catalog

import (
	"context"
	"sync"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// MemoryCache is the default single-process snapshot cache.
type MemoryCache struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Replace(_ context.Context, products []domain.Product) error {
	// Copy so later mutation of the caller's slice cannot tear the
	// snapshot readers see.
	snap := make([]domain.Product, len(products))
	copy(snap, products)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = snap
	return nil
}

func (c *MemoryCache) Snapshot(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := make([]domain.Product, len(c.products))
	copy(snap, c.products)
	return snap, nil
}

func (c *MemoryCache) Clear(ctx context.Context) error {
	return c.Replace(ctx, nil)
}
