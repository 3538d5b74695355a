package models

import "errors"

// Domain error taxonomy. Every failure in the core is a caller-input
// validation error raised before any state is mutated; there are no
// transient or retriable errors. Callers match with errors.Is.
var (
	// ErrInvalidSplit indicates malformed or inconsistent split parameters:
	// a missing participant list, share/percentage sums that do not match
	// the expense amount, or an unrecognized strategy.
	ErrInvalidSplit = errors.New("invalid split")

	// ErrCurrencyMismatch indicates an expense currency that differs from
	// the group's currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownUser indicates a referenced user id that is not a member
	// of the group.
	ErrUnknownUser = errors.New("user not in group")

	// ErrInvalidAmount indicates a negative settlement amount.
	ErrInvalidAmount = errors.New("amount must be non-negative")

	// ErrOverSettlement indicates a settlement amount exceeding the user's
	// current debt.
	ErrOverSettlement = errors.New("cannot settle more than owed")

	// ErrNothingOwed indicates a positive settlement against a user whose
	// balance is zero or negative.
	ErrNothingOwed = errors.New("user does not owe anything")
)
