package models

// Transaction notes written by the ledger.
const (
	NoteSettlement = "Settlement"
	NoteSimplified = "Simplified settlement"
)

// Transaction is one entry in a group's append-only history. It is either
// an expense-application audit record (both endpoints empty) or a
// settlement/simplification transfer (one or both endpoints set).
// Immutable once recorded.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// FromUser is the debtor's user id, empty for expense audit records.
	FromUser string `json:"from_user,omitempty"`

	// ToUser is the creditor's user id, empty when the settlement has no
	// named recipient and for expense audit records.
	ToUser string `json:"to_user,omitempty"`

	// Amount is the transaction amount, rounded to 2 decimals.
	Amount float64 `json:"amount"`

	// Currency is the group currency at the time of recording.
	Currency string `json:"currency"`

	// Note is a free-text description ("Expense: ...", "Settlement",
	// "Simplified settlement").
	Note string `json:"note"`

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64 `json:"created_at"`
}
