package stub

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrBadCredentials   = errors.New("password is incorrect")
	ErrUnknownUsername  = errors.New("username does not exist")
	ErrInvalidToken     = errors.New("invalid token")
	ErrMissingToken     = errors.New("missing bearer token")
	ErrInvalidUserInput = errors.New("username and password are required")
)

const startingBalance = 5000

type account struct {
	password string
	balance  float64
}

// Accounts is the in-memory user and token registry.
type Accounts struct {
	mu     sync.Mutex
	users  map[string]*account
	tokens map[string]string // token -> username
}

func NewAccounts() *Accounts {
	return &Accounts{
		users:  make(map[string]*account),
		tokens: make(map[string]string),
	}
}

func (a *Accounts) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidUserInput
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.users[username]; exists {
		return ErrUsernameTaken
	}
	a.users[username] = &account{password: password, balance: startingBalance}
	return nil
}

// Login checks the credentials and issues a fresh bearer token.
func (a *Accounts) Login(username, password string) (token string, balance float64, err error) {
	if username == "" || password == "" {
		return "", 0, ErrInvalidUserInput
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	acc, exists := a.users[username]
	if !exists {
		return "", 0, ErrUnknownUsername
	}
	if acc.password != password {
		return "", 0, ErrBadCredentials
	}

	token = uuid.New().String()
	a.tokens[token] = username
	return token, acc.balance, nil
}

// Resolve maps a bearer token back to its username.
func (a *Accounts) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	username, ok := a.tokens[token]
	if !ok {
		return "", ErrInvalidToken
	}
	return username, nil
}
