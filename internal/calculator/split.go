package calculator

import (
	"fmt"
	"math"

	"github.com/splitledger/splitledger/internal/models"
)

// Allocate computes per-user shares for an expense amount under the given
// split strategy. The returned shares sum exactly to Round2(amount), to
// the cent: for equal and percentage splits the shares are rounded
// individually and any leftover cent is assigned to the last participant
// in input order. Pure computation; fails with models.ErrInvalidSplit on
// malformed or inconsistent parameters.
func Allocate(amount float64, split models.Split) (map[string]float64, error) {
	switch s := split.(type) {
	case models.EqualSplit:
		return allocateEqual(amount, s)
	case models.ExactSplit:
		return allocateExact(amount, s)
	case models.PercentageSplit:
		return allocatePercentage(amount, s)
	default:
		return nil, fmt.Errorf("%w: unsupported split strategy", models.ErrInvalidSplit)
	}
}

func allocateEqual(amount float64, split models.EqualSplit) (map[string]float64, error) {
	if len(split.UserIDs) == 0 {
		return nil, fmt.Errorf("%w: equal split requires a list of users", models.ErrInvalidSplit)
	}

	share := Round2(amount / float64(len(split.UserIDs)))
	shares := make(map[string]float64, len(split.UserIDs))
	for _, uid := range split.UserIDs {
		if _, ok := shares[uid]; ok {
			return nil, fmt.Errorf("%w: duplicate user %q in equal split", models.ErrInvalidSplit, uid)
		}
		shares[uid] = share
	}

	reconcile(amount, shares, split.UserIDs[len(split.UserIDs)-1])
	return shares, nil
}

func allocateExact(amount float64, split models.ExactSplit) (map[string]float64, error) {
	if len(split.Shares) == 0 {
		return nil, fmt.Errorf("%w: exact split requires per-user amounts", models.ErrInvalidSplit)
	}

	shares := make(map[string]float64, len(split.Shares))
	var total float64
	for _, s := range split.Shares {
		if _, ok := shares[s.UserID]; ok {
			return nil, fmt.Errorf("%w: duplicate user %q in exact amounts", models.ErrInvalidSplit, s.UserID)
		}
		shares[s.UserID] = Round2(s.Amount)
		total += s.Amount
	}
	total = Round2(total)
	if math.Abs(total-Round2(amount)) > epsilon {
		return nil, fmt.Errorf("%w: exact amounts sum to %.2f, expense amount is %.2f",
			models.ErrInvalidSplit, total, amount)
	}

	// Sum already matches, no reconciliation needed.
	return shares, nil
}

func allocatePercentage(amount float64, split models.PercentageSplit) (map[string]float64, error) {
	if len(split.Shares) == 0 {
		return nil, fmt.Errorf("%w: percentage split requires per-user percentages", models.ErrInvalidSplit)
	}

	shares := make(map[string]float64, len(split.Shares))
	var totalPercent float64
	for _, s := range split.Shares {
		if _, ok := shares[s.UserID]; ok {
			return nil, fmt.Errorf("%w: duplicate user %q in percentages", models.ErrInvalidSplit, s.UserID)
		}
		shares[s.UserID] = Round2(amount * (s.Percent / 100.0))
		totalPercent += s.Percent
	}
	totalPercent = Round2(totalPercent)
	if math.Abs(totalPercent-100.0) > epsilon {
		return nil, fmt.Errorf("%w: percentages must sum to 100, got %.2f",
			models.ErrInvalidSplit, totalPercent)
	}

	reconcile(amount, shares, split.Shares[len(split.Shares)-1].UserID)
	return shares, nil
}

// reconcile compares the sum of individually rounded shares to the rounded
// total and assigns any leftover cent difference to lastUser. This keeps
// conservation exact at the cost of giving the remainder deterministically
// to one party.
func reconcile(amount float64, shares map[string]float64, lastUser string) {
	var assigned float64
	for _, v := range shares {
		assigned += v
	}
	assigned = Round2(assigned)
	if diff := Round2(Round2(amount) - assigned); diff != 0 {
		shares[lastUser] = Round2(shares[lastUser] + diff)
	}
}
