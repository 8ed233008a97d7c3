package stub

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mahitha-1310/qkart/internal/domain"
)

// Server exposes the stub backend over the QKart HTTP contract.
type Server struct {
	products *ProductStore
	accounts *Accounts
	carts    *Carts
}

func NewServer(products *ProductStore, accounts *Accounts, carts *Carts) *Server {
	return &Server{products: products, accounts: accounts, carts: carts}
}

// Router builds the chi router for the stub endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/products", s.handleListProducts)
	r.Get("/products/search", s.handleSearchProducts)
	r.Get("/cart", s.handleGetCart)
	r.Post("/cart", s.handleUpsertCart)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	return r
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListProducts(r.Context())
	if err != nil {
		log.Printf("list products failed: %v", err)
		respondFailure(w, http.StatusInternalServerError, "Something went wrong. Check the backend console for more details")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("value")
	products, err := s.products.SearchProducts(r.Context(), text)
	if err != nil {
		log.Printf("search products failed: %v", err)
		respondFailure(w, http.StatusInternalServerError, "Something went wrong. Check the backend console for more details")
		return
	}
	// An empty result is still a 200 with an empty array.
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	username, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, s.carts.Get(username))
}

type upsertRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (s *Server) handleUpsertCart(w http.ResponseWriter, r *http.Request) {
	username, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := s.products.GetProduct(r.Context(), req.ProductID); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			respondFailure(w, http.StatusNotFound, "Product doesn't exist")
			return
		}
		log.Printf("get product failed: %v", err)
		respondFailure(w, http.StatusInternalServerError, "Something went wrong. Check the backend console for more details")
		return
	}

	respondJSON(w, http.StatusOK, s.carts.Upsert(username, req.ProductID, req.Qty))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.accounts.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			respondFailure(w, http.StatusBadRequest, "Username is already taken")
		default:
			respondFailure(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, balance, err := s.accounts.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownUsername):
			respondFailure(w, http.StatusBadRequest, "Username does not exist")
		case errors.Is(err, ErrBadCredentials):
			respondFailure(w, http.StatusBadRequest, "Password is incorrect")
		default:
			respondFailure(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"token":    token,
		"username": req.Username,
		"balance":  balance,
	})
}

// authenticate resolves the bearer token or writes the 401 itself.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header {
		respondFailure(w, http.StatusUnauthorized, "Protected route, Oauth2 Bearer token not found")
		return "", false
	}

	username, err := s.accounts.Resolve(token)
	if err != nil {
		respondFailure(w, http.StatusUnauthorized, "Protected route, Oauth2 Bearer token invalid")
		return "", false
	}
	return username, true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"success": false, "message": message})
}
