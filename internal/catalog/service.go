package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mahitha-1310/qkart/internal/api"
	"github.com/mahitha-1310/qkart/internal/domain"
	"github.com/mahitha-1310/qkart/internal/notify"
)

// Service fetches product lists and keeps the snapshot cache current.
//
// Every fetch gets a monotonic generation number when it is dispatched and
// only the newest generation may touch the cache. Requests in flight are
// never cancelled when a newer one starts, so without the tag a slow early
// search could land after a fast later one and overwrite the cache with
// older data.
type Service struct {
	catalogAPI api.CatalogAPI
	cache      SnapshotCache
	sink       notify.Sink
	log        *slog.Logger

	sfg singleflight.Group

	mu         sync.Mutex
	dispatched uint64
	applied    uint64
}

func NewService(catalogAPI api.CatalogAPI, cache SnapshotCache, sink notify.Sink, log *slog.Logger) *Service {
	return &Service{
		catalogAPI: catalogAPI,
		cache:      cache,
		sink:       sink,
		log:        log,
	}
}

// LoadAll fetches the full product list into the cache. On failure the
// cache is cleared, the backend message is surfaced through the sink and
// an empty snapshot is returned; the failure never propagates.
func (s *Service) LoadAll(ctx context.Context) []domain.Product {
	return s.fetch(ctx, "all", true, func() ([]domain.Product, error) {
		return s.catalogAPI.ListProducts(ctx)
	})
}

// Search fetches the filtered product list for a query. A failed search is
// a soft fail: the cache clears to empty so the UI shows "no products
// found", but nothing is pushed at the user over a bad query.
func (s *Service) Search(ctx context.Context, query string) []domain.Product {
	return s.fetch(ctx, "search:"+query, false, func() ([]domain.Product, error) {
		return s.catalogAPI.SearchProducts(ctx, query)
	})
}

// Snapshot returns the current cached catalog.
func (s *Service) Snapshot(ctx context.Context) []domain.Product {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		s.log.Error("catalog snapshot read failed", "error", err)
		return []domain.Product{}
	}
	return snap
}

func (s *Service) fetch(ctx context.Context, key string, loud bool, call func() ([]domain.Product, error)) []domain.Product {
	gen := s.nextGeneration()

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		return call()
	})

	if err != nil {
		if !s.applyGeneration(gen) {
			return s.Snapshot(ctx)
		}
		s.log.Warn("catalog fetch failed", "key", key, "error", err)
		if loud {
			s.sink.Notify(notify.SeverityError, userMessage(err))
		}
		if cerr := s.cache.Clear(ctx); cerr != nil {
			s.log.Error("catalog cache clear failed", "error", cerr)
		}
		return []domain.Product{}
	}

	products := v.([]domain.Product)
	if !s.applyGeneration(gen) {
		// A newer fetch already replaced the snapshot; this response is
		// stale and gets dropped.
		return s.Snapshot(ctx)
	}
	if rerr := s.cache.Replace(ctx, products); rerr != nil {
		s.log.Error("catalog cache replace failed", "error", rerr)
	}
	return products
}

func (s *Service) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched++
	return s.dispatched
}

// applyGeneration claims the cache for a completed fetch. It returns false
// when a newer generation already applied.
func (s *Service) applyGeneration(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		return false
	}
	s.applied = gen
	return true
}

func userMessage(err error) string {
	var be *api.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return api.GenericBackendMessage
}
