package api

import (
	"context"
	"net/http"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// CartAPI is the authenticated cart endpoint surface consumed by the cart
// controller. Every call requires a bearer token.
type CartAPI interface {
	FetchCart(ctx context.Context, token string) ([]domain.CartEntry, error)
	UpsertItem(ctx context.Context, token, productID string, quantity int) ([]domain.CartEntry, error)
}

type CartClient struct {
	client *Client
}

func NewCartClient(client *Client) *CartClient {
	return &CartClient{client: client}
}

func (c *CartClient) FetchCart(ctx context.Context, token string) ([]domain.CartEntry, error) {
	var entries []domain.CartEntry
	if err := c.client.do(ctx, http.MethodGet, "/cart", token, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertItem sets the quantity for one product. The response is the full
// new cart, which replaces the caller's previous copy wholesale.
func (c *CartClient) UpsertItem(ctx context.Context, token, productID string, quantity int) ([]domain.CartEntry, error) {
	body := domain.CartEntry{ProductID: productID, Quantity: quantity}
	var entries []domain.CartEntry
	if err := c.client.do(ctx, http.MethodPost, "/cart", token, body, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
