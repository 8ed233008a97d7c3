package cart

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahitha-1310/qkart/internal/api"
	"github.com/mahitha-1310/qkart/internal/domain"
	"github.com/mahitha-1310/qkart/internal/notify"
)

type mockCartAPI struct {
	mu       sync.Mutex
	entries  []domain.CartEntry
	err      error
	upserts  int
	lastPID  string
	lastQty  int
	lastTok  string
	fetchErr error
}

func (m *mockCartAPI) FetchCart(_ context.Context, token string) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.entries, nil
}

func (m *mockCartAPI) UpsertItem(_ context.Context, token, productID string, quantity int) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	m.lastTok = token
	m.lastPID = productID
	m.lastQty = quantity
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockCartAPI) upsertCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upserts
}

type recordingSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *recordingSink) Notify(_ notify.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *recordingSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return ""
	}
	return s.messages[len(s.messages)-1]
}

func newTestController(m *mockCartAPI, sink *recordingSink) *Controller {
	return NewController(m, sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddOrUpdate_NoToken_NoNetworkCall(t *testing.T) {
	mock := &mockCartAPI{}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	out := sut.AddOrUpdate(context.Background(), "", nil, "A", 1, true)

	assert.Equal(t, StatusNotAuthenticated, out.Status)
	assert.Equal(t, MsgNotLoggedIn, out.Message)
	assert.Equal(t, MsgNotLoggedIn, sink.last())
	assert.Equal(t, 0, mock.upsertCount())
	assert.True(t, out.Status.Rejected())
}

func TestAddOrUpdate_DuplicateGuard_NoNetworkCall(t *testing.T) {
	mock := &mockCartAPI{}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	current := []domain.CartEntry{{ProductID: "A", Quantity: 1}}
	out := sut.AddOrUpdate(context.Background(), "tok", current, "A", 5, true)

	assert.Equal(t, StatusDuplicateGuarded, out.Status)
	assert.Equal(t, MsgAlreadyInCart, sink.last())
	assert.Equal(t, 0, mock.upsertCount())
}

func TestAddOrUpdate_AuthCheckedBeforeGuard(t *testing.T) {
	mock := &mockCartAPI{}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	// Entry is a duplicate AND there is no token: the auth rejection must
	// win, per the fixed precondition order.
	current := []domain.CartEntry{{ProductID: "A", Quantity: 1}}
	out := sut.AddOrUpdate(context.Background(), "", current, "A", 5, true)

	assert.Equal(t, StatusNotAuthenticated, out.Status)
	assert.Equal(t, 0, mock.upsertCount())
}

func TestAddOrUpdate_StepperBypassesGuard(t *testing.T) {
	mock := &mockCartAPI{entries: []domain.CartEntry{{ProductID: "A", Quantity: 5}}}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	current := []domain.CartEntry{{ProductID: "A", Quantity: 1}}
	out := sut.AddOrUpdate(context.Background(), "tok", current, "A", 5, false)

	require.Equal(t, StatusApplied, out.Status)
	assert.Equal(t, 1, mock.upsertCount())
	assert.Equal(t, "A", mock.lastPID)
	assert.Equal(t, 5, mock.lastQty)
	assert.Equal(t, "tok", mock.lastTok)
}

func TestAddOrUpdate_Applied_ReturnsServerCartVerbatim(t *testing.T) {
	serverCart := []domain.CartEntry{
		{ProductID: "B", Quantity: 2},
		{ProductID: "A", Quantity: 1},
	}
	mock := &mockCartAPI{entries: serverCart}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	out := sut.AddOrUpdate(context.Background(), "tok", []domain.CartEntry{{ProductID: "B", Quantity: 2}}, "A", 1, true)

	require.Equal(t, StatusApplied, out.Status)
	assert.Equal(t, serverCart, out.Entries)
}

func TestAddOrUpdate_BackendError_SurfacedVerbatim(t *testing.T) {
	mock := &mockCartAPI{err: &api.BackendError{StatusCode: 404, Message: "Product doesn't exist"}}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	out := sut.AddOrUpdate(context.Background(), "tok", nil, "nope", 1, true)

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, "Product doesn't exist", out.Message)
	assert.Equal(t, "Product doesn't exist", sink.last())
	assert.Nil(t, out.Entries)
}

func TestAddOrUpdate_TransportError_GenericMessage(t *testing.T) {
	mock := &mockCartAPI{err: fmt.Errorf("connection refused")}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	out := sut.AddOrUpdate(context.Background(), "tok", nil, "A", 1, true)

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, api.GenericBackendMessage, out.Message)
}

func TestAddOrUpdate_NoAutomaticRetry(t *testing.T) {
	mock := &mockCartAPI{err: fmt.Errorf("backend down")}
	sink := &recordingSink{}
	sut := newTestController(mock, sink)

	sut.AddOrUpdate(context.Background(), "tok", nil, "A", 1, true)
	assert.Equal(t, 1, mock.upsertCount(), "a failed upsert must not be retried")
}
