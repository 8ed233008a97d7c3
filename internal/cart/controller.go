package cart

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mahitha-1310/qkart/internal/api"
	"github.com/mahitha-1310/qkart/internal/domain"
	"github.com/mahitha-1310/qkart/internal/notify"
)

// Messages for the two policy rejections. The duplicate message steers the
// user to the cart panel because the catalog add button must not silently
// bump the quantity on a second click.
const (
	MsgNotLoggedIn   = "Login to add an item to the Cart"
	MsgAlreadyInCart = "Item already in cart. Use the cart sidebar to update quantity or remove item."
)

// Controller runs cart mutations against the cart service. It owns no cart
// state itself: current entries come in as arguments and the new
// authoritative cart comes back in the outcome.
type Controller struct {
	cartAPI api.CartAPI
	sink    notify.Sink
	log     *slog.Logger
}

func NewController(cartAPI api.CartAPI, sink notify.Sink, log *slog.Logger) *Controller {
	return &Controller{cartAPI: cartAPI, sink: sink, log: log}
}

// AddOrUpdate upserts a (product, quantity) pair into the server-held
// cart. Preconditions run in a fixed order: the auth check first, then the
// duplicate guard, and only then the network call. guardAgainstDuplicate
// is set by the catalog add button and unset by the in-cart quantity
// stepper, which must always call through.
//
// A failed request is reported and dropped; there is no retry. The next
// attempt has to come from a new user action.
func (c *Controller) AddOrUpdate(ctx context.Context, token string, currentEntries []domain.CartEntry, productID string, quantity int, guardAgainstDuplicate bool) Outcome {
	if token == "" {
		c.sink.Notify(notify.SeverityWarning, MsgNotLoggedIn)
		return Outcome{Status: StatusNotAuthenticated, Message: MsgNotLoggedIn}
	}

	if guardAgainstDuplicate && IsInCart(currentEntries, productID) {
		c.sink.Notify(notify.SeverityWarning, MsgAlreadyInCart)
		return Outcome{Status: StatusDuplicateGuarded, Message: MsgAlreadyInCart}
	}

	entries, err := c.cartAPI.UpsertItem(ctx, token, productID, quantity)
	if err != nil {
		msg := backendMessage(err)
		c.log.Error("cart upsert failed", "product_id", productID, "error", err)
		c.sink.Notify(notify.SeverityError, msg)
		return Outcome{Status: StatusFailed, Message: msg}
	}

	return Outcome{Status: StatusApplied, Entries: entries}
}

// backendMessage extracts the user-facing message from an upsert error.
// Structured backend errors (404 "Product doesn't exist" and friends) are
// surfaced verbatim; anything else gets the generic fallback.
func backendMessage(err error) string {
	var be *api.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return api.GenericBackendMessage
}
