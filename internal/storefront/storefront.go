// Package storefront wires the client together: session, catalog service,
// cart controller and the search coordinator, plus the reconciliation pass
// that keeps line items in step with the server.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mahitha-1310/qkart/internal/api"
	"github.com/mahitha-1310/qkart/internal/cart"
	"github.com/mahitha-1310/qkart/internal/catalog"
	"github.com/mahitha-1310/qkart/internal/domain"
	"github.com/mahitha-1310/qkart/internal/notify"
	"github.com/mahitha-1310/qkart/internal/search"
	"github.com/mahitha-1310/qkart/internal/session"
)

type Storefront struct {
	sessions   *session.Store
	catalog    *catalog.Service
	controller *cart.Controller
	cartAPI    api.CartAPI
	authAPI    api.AuthAPI
	sink       notify.Sink
	log        *slog.Logger

	coordinator   *search.Coordinator
	pendingSearch *time.Timer

	mu      sync.Mutex
	entries []domain.CartEntry
	items   []domain.LineItem
}

func New(sessions *session.Store, catalogSvc *catalog.Service, controller *cart.Controller, cartAPI api.CartAPI, authAPI api.AuthAPI, sink notify.Sink, log *slog.Logger, quietInterval time.Duration) *Storefront {
	s := &Storefront{
		sessions:   sessions,
		catalog:    catalogSvc,
		controller: controller,
		cartAPI:    cartAPI,
		authAPI:    authAPI,
		sink:       sink,
		log:        log,
	}
	s.coordinator = search.NewCoordinator(quietInterval, func(text string) {
		s.runSearch(context.Background(), text)
	})
	return s
}

// LoadCatalog fetches the full product list and re-reconciles the cart
// against it.
func (s *Storefront) LoadCatalog(ctx context.Context) []domain.Product {
	products := s.catalog.LoadAll(ctx)
	s.reconcile(products)
	return products
}

// OnQueryInput feeds one search-box keystroke into the debounce
// coordinator. The actual search runs after the quiet interval, and only
// for the last keystroke of a burst.
func (s *Storefront) OnQueryInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingSearch = s.coordinator.OnInput(text, s.pendingSearch)
}

func (s *Storefront) runSearch(ctx context.Context, text string) {
	products := s.catalog.Search(ctx, text)
	s.reconcile(products)
}

// Login validates credentials, authenticates and pulls the user's cart.
func (s *Storefront) Login(ctx context.Context, username, password string) bool {
	if msg, ok := validateLogin(username, password); !ok {
		s.sink.Notify(notify.SeverityWarning, msg)
		return false
	}

	res, err := s.authAPI.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		s.sink.Notify(notify.SeverityError, userMessage(err))
		return false
	}

	s.sessions.Set(session.Session{Token: res.Token, Username: res.Username, Balance: res.Balance})
	s.sink.Notify(notify.SeverityInfo, "Logged in successfully")
	s.RefreshCart(ctx)
	return true
}

// Register validates and creates an account. The user still logs in
// afterwards; registration does not start a session.
func (s *Storefront) Register(ctx context.Context, username, password, confirm string) bool {
	if msg, ok := validateRegister(username, password, confirm); !ok {
		s.sink.Notify(notify.SeverityWarning, msg)
		return false
	}

	if err := s.authAPI.Register(ctx, api.Credentials{Username: username, Password: password}); err != nil {
		s.sink.Notify(notify.SeverityError, userMessage(err))
		return false
	}

	s.sink.Notify(notify.SeverityInfo, "Registered successfully")
	return true
}

// Logout drops the session and the cart derived from it.
func (s *Storefront) Logout() {
	s.sessions.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.items = nil
}

// RefreshCart re-fetches the raw cart from the server. Failures are
// surfaced and the previous cart kept.
func (s *Storefront) RefreshCart(ctx context.Context) {
	sess := s.sessions.Current()
	if !sess.LoggedIn() {
		return
	}
	entries, err := s.cartAPI.FetchCart(ctx, sess.Token)
	if err != nil {
		s.sink.Notify(notify.SeverityError, userMessage(err))
		return
	}
	s.replaceEntries(ctx, entries)
}

// AddToCart is the catalog "add" button: the duplicate guard is on, so a
// second click on an item already in the cart is rejected rather than
// silently bumping its quantity.
func (s *Storefront) AddToCart(ctx context.Context, productID string, quantity int) cart.Outcome {
	return s.mutate(ctx, productID, quantity, true)
}

// SetQuantity is the in-cart stepper: the guard is off because updating an
// existing entry is the whole point.
func (s *Storefront) SetQuantity(ctx context.Context, productID string, quantity int) cart.Outcome {
	return s.mutate(ctx, productID, quantity, false)
}

func (s *Storefront) mutate(ctx context.Context, productID string, quantity int, guard bool) cart.Outcome {
	sess := s.sessions.Current()

	s.mu.Lock()
	current := s.entries
	s.mu.Unlock()

	out := s.controller.AddOrUpdate(ctx, sess.Token, current, productID, quantity, guard)
	if out.Status == cart.StatusApplied {
		// The response is the new authoritative cart; no client-side
		// merging with the previous entries.
		s.replaceEntries(ctx, out.Entries)
	}
	return out
}

func (s *Storefront) replaceEntries(ctx context.Context, entries []domain.CartEntry) {
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	s.reconcile(s.catalog.Snapshot(ctx))
}

// reconcile rebuilds the line items from the current raw entries and the
// given catalog snapshot. It runs synchronously after every change to
// either input; the latest pass wins.
func (s *Storefront) reconcile(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cart.Reconcile(s.entries, products)
}

// LineItems returns the current display-ready cart.
func (s *Storefront) LineItems() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalCost is the sum over the current line items.
func (s *Storefront) TotalCost() float64 {
	return cart.TotalCost(s.LineItems())
}

// Session returns the current session value.
func (s *Storefront) Session() session.Session {
	return s.sessions.Current()
}

func userMessage(err error) string {
	var be *api.BackendError
	if errors.As(err, &be) {
		return be.Message
	}
	return api.GenericBackendMessage
}
