package models

// GroupInfo is the persisted identity of a group. The live aggregate —
// members, expenses, and transaction history — is owned by ledger.Group;
// this record is what group listings and storage rows carry.
type GroupInfo struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Trip to Paris").
	Name string `json:"name"`

	// Currency is the group's home currency. Every expense must be
	// denominated in it.
	Currency string `json:"currency"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}
