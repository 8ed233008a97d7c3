package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker/v2"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// CatalogAPI is the read-only product endpoint surface consumed by the
// catalog service.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// CatalogClient calls the product endpoints through a circuit breaker, so
// a flapping backend degrades to fast empty-state failures instead of
// piling up timed-out requests.
type CatalogClient struct {
	client  *Client
	breaker *gobreaker.CircuitBreaker[[]domain.Product]
}

func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{Name: "catalog"}),
	}
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return c.breaker.Execute(func() ([]domain.Product, error) {
		var products []domain.Product
		if err := c.client.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
			return nil, err
		}
		return products, nil
	})
}

func (c *CatalogClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	return c.breaker.Execute(func() ([]domain.Product, error) {
		var products []domain.Product
		path := "/products/search?value=" + url.QueryEscape(query)
		if err := c.client.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
			return nil, err
		}
		return products, nil
	})
}
