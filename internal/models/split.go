package models

import "strings"

// SplitType identifies the strategy used to turn an expense amount into
// per-user shares.
type SplitType string

const (
	SplitTypeEqual      SplitType = "equal"
	SplitTypeExact      SplitType = "exact"
	SplitTypePercentage SplitType = "percentage"
)

// ParseSplitType converts a strategy tag (case-insensitive) to a SplitType.
// Returns ErrInvalidSplit for anything other than equal/exact/percentage.
func ParseSplitType(s string) (SplitType, error) {
	switch SplitType(strings.ToLower(s)) {
	case SplitTypeEqual:
		return SplitTypeEqual, nil
	case SplitTypeExact:
		return SplitTypeExact, nil
	case SplitTypePercentage:
		return SplitTypePercentage, nil
	default:
		return "", ErrInvalidSplit
	}
}

// Split is the closed set of split strategies. Each variant carries the
// parameters its strategy needs; the allocator dispatches on the concrete
// type. Only the three variants below implement it.
type Split interface {
	Type() SplitType
	split()
}

// EqualSplit divides an amount evenly across UserIDs. The last user in the
// list absorbs any leftover cent, so callers that care which party absorbs
// the remainder must pass a stable ordering.
type EqualSplit struct {
	UserIDs []string
}

func (EqualSplit) Type() SplitType { return SplitTypeEqual }
func (EqualSplit) split()          {}

// ExactShare is one caller-supplied share of an exact split.
type ExactShare struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// ExactSplit assigns each user a caller-supplied amount. The amounts must
// sum to the expense total.
type ExactSplit struct {
	Shares []ExactShare
}

func (ExactSplit) Type() SplitType { return SplitTypeExact }
func (ExactSplit) split()          {}

// PercentShare is one entry of a percentage split.
type PercentShare struct {
	UserID  string  `json:"user_id"`
	Percent float64 `json:"percent"`
}

// PercentageSplit assigns each user a percentage of the total. Percentages
// must sum to 100; the last entry absorbs any leftover cent.
type PercentageSplit struct {
	Shares []PercentShare
}

func (PercentageSplit) Type() SplitType { return SplitTypePercentage }
func (PercentageSplit) split()          {}
