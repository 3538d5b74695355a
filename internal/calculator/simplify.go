package calculator

import (
	"math"
	"sort"
)

// Transfer is one debtor→creditor instruction produced by Simplify.
type Transfer struct {
	FromUser string
	ToUser   string
	Amount   float64
}

// party is one side of the matching: a user id and the remaining
// magnitude of their debt or credit.
type party struct {
	userID string
	amount float64
}

// Simplify consumes a balance snapshot (positive = owes, negative = owed)
// and returns an ordered sequence of transfers that zeroes every non-zero
// balance, assuming total debt equals total credit (guaranteed by the
// conservation invariant on expense application).
//
// Greedy two-pointer matching, O(n log n): debtors and creditors are
// sorted descending by magnitude and each step transfers
// min(remaining debt, remaining credit). Matching largest obligations
// first keeps the transfer count low (at most debtors+creditors-1) but is
// a heuristic, not a proven minimum for arbitrary distributions.
func Simplify(balances map[string]float64) []Transfer {
	var debtors, creditors []party
	for uid, balance := range balances {
		bal := Round2(balance)
		switch {
		case bal > 0:
			debtors = append(debtors, party{userID: uid, amount: bal})
		case bal < 0:
			creditors = append(creditors, party{userID: uid, amount: -bal})
		}
	}

	sortParties(debtors)
	sortParties(creditors)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		transfer := Round2(math.Min(debtors[i].amount, creditors[j].amount))
		transfers = append(transfers, Transfer{
			FromUser: debtors[i].userID,
			ToUser:   creditors[j].userID,
			Amount:   transfer,
		})

		debtors[i].amount = Round2(debtors[i].amount - transfer)
		creditors[j].amount = Round2(creditors[j].amount - transfer)

		// A step may advance both cursors when the transfer exactly
		// matches both remaining amounts.
		if math.Abs(debtors[i].amount) < epsilon {
			i++
		}
		if math.Abs(creditors[j].amount) < epsilon {
			j++
		}
	}

	return transfers
}

// sortParties orders by magnitude descending, breaking ties by user id so
// the output is deterministic regardless of map iteration order.
func sortParties(parties []party) {
	sort.Slice(parties, func(a, b int) bool {
		if parties[a].amount != parties[b].amount {
			return parties[a].amount > parties[b].amount
		}
		return parties[a].userID < parties[b].userID
	})
}
