// Package catalog caches the last-fetched product list and coordinates
// fetches against the catalog endpoints. The cached snapshot is the lookup
// table every cart reconciliation joins against.
package catalog

import (
	"context"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// SnapshotCache holds the most recent successful catalog response, full or
// filtered. Replace swaps the whole snapshot at once: a reader always sees
// either the old list or the new one, never a mix. Clear resets to the
// empty snapshot, which the UI renders as "no products found".
type SnapshotCache interface {
	Replace(ctx context.Context, products []domain.Product) error
	Snapshot(ctx context.Context) ([]domain.Product, error)
	Clear(ctx context.Context) error
}
