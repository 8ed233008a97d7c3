package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahitha-1310/qkart/internal/domain"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestCatalogClient_ListProducts(t *testing.T) {
	var gotPath, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]domain.Product{
			{ID: "A", Name: "iPhone XR", Cost: 100, Rating: 4},
		})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCatalogClient(client)
	products, err := sut.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A", products[0].ID)
	assert.Equal(t, "/products", gotPath)
	assert.NotEmpty(t, gotRequestID, "every request carries a request id")
}

func TestCatalogClient_SearchEscapesQuery(t *testing.T) {
	var gotValue string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotValue = r.URL.Query().Get("value")
		json.NewEncoder(w).Encode([]domain.Product{})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCatalogClient(client)
	products, err := sut.SearchProducts(context.Background(), "snake plant & pot")
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, "snake plant & pot", gotValue)
}

func TestCatalogClient_BackendErrorMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Something went wrong. Check the backend console for more details",
		})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCatalogClient(client)
	_, err := sut.ListProducts(context.Background())
	require.Error(t, err)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusInternalServerError, be.StatusCode)
	assert.Equal(t, "Something went wrong. Check the backend console for more details", be.Message)
}

func TestClient_GenericMessageWhenPayloadUnusable(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>nope</html>"))
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCatalogClient(client)
	_, err := sut.ListProducts(context.Background())

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, GenericBackendMessage, be.Message)
}

func TestCartClient_FetchCartSendsBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.CartEntry{{ProductID: "B", Quantity: 2}})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCartClient(client)
	entries, err := sut.FetchCart(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, []domain.CartEntry{{ProductID: "B", Quantity: 2}}, entries)
}

func TestCartClient_UpsertBody(t *testing.T) {
	var got map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode([]domain.CartEntry{{ProductID: "A", Quantity: 3}})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewCartClient(client)
	entries, err := sut.UpsertItem(context.Background(), "tok", "A", 3)
	require.NoError(t, err)
	assert.Equal(t, "A", got["productId"])
	assert.Equal(t, float64(3), got["qty"])
	require.Len(t, entries, 1)
}

func TestAuthClient_Login(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "token": "testtoken", "username": "criodo", "balance": 5000,
		})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewAuthClient(client)
	res, err := sut.Login(context.Background(), Credentials{Username: "criodo", Password: "criodo123"})
	require.NoError(t, err)
	assert.Equal(t, "testtoken", res.Token)
	assert.Equal(t, "criodo", res.Username)
	assert.Equal(t, 5000.0, res.Balance)
}

func TestAuthClient_LoginFailureMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Password is incorrect"})
	})
	client, srv := newTestClient(handler)
	defer srv.Close()

	sut := NewAuthClient(client)
	_, err := sut.Login(context.Background(), Credentials{Username: "criodo", Password: "bad"})

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Password is incorrect", be.Message)
}
