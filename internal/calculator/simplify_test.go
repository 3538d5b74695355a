package calculator

import (
	"math"
	"testing"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
		want     []Transfer
	}{
		{
			name:     "single debtor single creditor",
			balances: map[string]float64{"A": 15, "B": -15},
			want:     []Transfer{{FromUser: "A", ToUser: "B", Amount: 15}},
		},
		{
			name:     "largest obligations matched first",
			balances: map[string]float64{"a": 40, "b": 10, "c": -30, "d": -20},
			want: []Transfer{
				{FromUser: "a", ToUser: "c", Amount: 30},
				{FromUser: "a", ToUser: "d", Amount: 10},
				{FromUser: "b", ToUser: "d", Amount: 10},
			},
		},
		{
			name:     "exact match advances both cursors",
			balances: map[string]float64{"a": 25, "b": 25, "c": -25, "d": -25},
			want: []Transfer{
				{FromUser: "a", ToUser: "c", Amount: 25},
				{FromUser: "b", ToUser: "d", Amount: 25},
			},
		},
		{
			name:     "all settled yields no transfers",
			balances: map[string]float64{"A": 0, "B": 0},
			want:     nil,
		},
		{
			name:     "empty snapshot",
			balances: map[string]float64{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers, want %d: %v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("transfer %d = %+v, want %+v", i, got[i], w)
				}
			}
		})
	}
}

// Applying the emitted transfers back to the snapshot must zero every
// balance, and the transfer count must not exceed debtors+creditors-1.
func TestSimplifyZeroesBalances(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]float64
	}{
		{"two parties", map[string]float64{"A": -5, "B": 5}},
		{"five parties", map[string]float64{"a": 12.34, "b": 7.66, "c": -10, "d": -5, "e": -5}},
		{"cent-level residues", map[string]float64{"a": 0.01, "b": 0.02, "c": -0.03}},
		{"uneven thirds", map[string]float64{"a": 33.33, "b": 33.33, "c": 33.34, "d": -100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining := make(map[string]float64, len(tt.balances))
			debtors, creditors := 0, 0
			for uid, bal := range tt.balances {
				remaining[uid] = bal
				if bal > 0 {
					debtors++
				} else if bal < 0 {
					creditors++
				}
			}

			transfers := Simplify(tt.balances)
			if max := debtors + creditors - 1; len(transfers) > max {
				t.Errorf("emitted %d transfers, want at most %d", len(transfers), max)
			}

			for _, tr := range transfers {
				remaining[tr.FromUser] = Round2(remaining[tr.FromUser] - tr.Amount)
				remaining[tr.ToUser] = Round2(remaining[tr.ToUser] + tr.Amount)
			}
			for uid, bal := range remaining {
				if math.Abs(bal) > 1e-9 {
					t.Errorf("balance for %s = %v after applying transfers, want 0", uid, bal)
				}
			}
		})
	}
}

// Simplify reads the snapshot only; it must not mutate the caller's map.
func TestSimplifyLeavesSnapshotIntact(t *testing.T) {
	balances := map[string]float64{"A": 10, "B": -10}
	Simplify(balances)
	if balances["A"] != 10 || balances["B"] != -10 {
		t.Errorf("snapshot mutated: %v", balances)
	}
}
