package models

// Expense represents a shared expense applied to a group.
// Expenses are immutable after creation and kept as append-only history.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is the human-readable description (e.g., "Dinner").
	Description string `json:"description"`

	// Amount is the total expense amount, rounded to 2 decimals.
	Amount float64 `json:"amount"`

	// Currency is the expense currency. Must match the group currency.
	Currency string `json:"currency"`

	// SplitType records which strategy produced the shares.
	SplitType SplitType `json:"split_type"`

	// Shares maps user id to the portion of Amount attributed to that
	// user's balance. The values sum exactly to Amount, to the cent.
	Shares map[string]float64 `json:"shares"`

	// PaidBy is the id of the user who fronted the money, if any.
	// The payer is credited the full amount against their shares.
	PaidBy string `json:"paid_by,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
