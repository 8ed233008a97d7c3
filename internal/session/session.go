package session

import "sync"

// Session identifies the logged-in user. A zero Session means logged out.
// The token is opaque to the client; its presence is the only signal the
// cart controller checks before mutating anything.
type Session struct {
	Token    string
	Username string
	Balance  float64
}

// LoggedIn reports whether the session carries a token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Store holds the current session so it can be read explicitly by whoever
// needs it, instead of through ambient globals.
type Store struct {
	mu  sync.RWMutex
	cur Session
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Store) Set(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = sess
}

// Clear logs the user out.
func (s *Store) Clear() {
	s.Set(Session{})
}
