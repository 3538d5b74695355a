package models

// User represents a member of an expense-sharing group.
//
// Balance is the user's net signed position within the group:
// positive means the user owes money into the group, negative means the
// group owes the user. It is the only mutable field and is updated only
// through ledger operations (expense application, settlement,
// simplification) — never assigned directly.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	// Immutable once assigned.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Currency is the user's home currency (e.g., "USD").
	// Defaults to the group's currency.
	Currency string `json:"currency"`

	// Balance is the running balance, rounded to 2 decimals.
	Balance float64 `json:"balance"`

	// CreatedAt is the Unix timestamp when the user was added.
	CreatedAt int64 `json:"created_at"`
}
