package cart

import "github.com/mahitha-1310/qkart/internal/domain"

type OutcomeStatus string

const (
	// StatusNotAuthenticated: no token, no network call was made.
	StatusNotAuthenticated OutcomeStatus = "NOT_AUTHENTICATED"
	// StatusDuplicateGuarded: policy rejection of a duplicate add from the
	// catalog button; no network call was made.
	StatusDuplicateGuarded OutcomeStatus = "DUPLICATE_GUARDED"
	// StatusApplied: the server accepted the upsert; Entries is the new
	// authoritative cart.
	StatusApplied OutcomeStatus = "APPLIED"
	// StatusFailed: the upsert was attempted and failed; the previous cart
	// stands.
	StatusFailed OutcomeStatus = "FAILED"
)

func (s OutcomeStatus) String() string {
	return string(s)
}

// Rejected reports whether the operation was stopped before any request
// went out.
func (s OutcomeStatus) Rejected() bool {
	return s == StatusNotAuthenticated || s == StatusDuplicateGuarded
}

// Outcome is the result of one AddOrUpdate invocation. Entries is only set
// for StatusApplied; for every other status the caller keeps its previous
// cart untouched.
type Outcome struct {
	Status  OutcomeStatus
	Message string
	Entries []domain.CartEntry
}
