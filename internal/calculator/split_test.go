package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/splitledger/splitledger/internal/models"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0.125, 0.13},  // half rounds away from zero
		{-0.125, -0.13},
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
		{-0.375, -0.38},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		split        models.Split
		wantErr      bool
		validateFunc func(t *testing.T, shares map[string]float64)
	}{
		{
			name:   "equal split divides evenly",
			amount: 90,
			split:  models.EqualSplit{UserIDs: []string{"A", "B", "C"}},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				for _, uid := range []string{"A", "B", "C"} {
					if shares[uid] != 30.00 {
						t.Errorf("%s share = %v, want 30.00", uid, shares[uid])
					}
				}
			},
		},
		{
			name:   "equal split assigns leftover cent to last user",
			amount: 100,
			split:  models.EqualSplit{UserIDs: []string{"A", "B", "C"}},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if shares["A"] != 33.33 || shares["B"] != 33.33 {
					t.Errorf("A,B shares = %v,%v, want 33.33 each", shares["A"], shares["B"])
				}
				if shares["C"] != 33.34 {
					t.Errorf("C share = %v, want 33.34 (absorbs the remainder)", shares["C"])
				}
			},
		},
		{
			name:    "equal split with no users fails",
			amount:  10,
			split:   models.EqualSplit{},
			wantErr: true,
		},
		{
			name:   "exact split passes amounts through",
			amount: 100,
			split: models.ExactSplit{Shares: []models.ExactShare{
				{UserID: "A", Amount: 70},
				{UserID: "B", Amount: 30},
			}},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if shares["A"] != 70.00 || shares["B"] != 30.00 {
					t.Errorf("shares = %v, want A:70.00 B:30.00", shares)
				}
			},
		},
		{
			name:   "exact split sum mismatch fails",
			amount: 100,
			split: models.ExactSplit{Shares: []models.ExactShare{
				{UserID: "A", Amount: 70},
				{UserID: "B", Amount: 20},
			}},
			wantErr: true,
		},
		{
			name:    "exact split with no amounts fails",
			amount:  100,
			split:   models.ExactSplit{},
			wantErr: true,
		},
		{
			// The entries sum to the amount, but the repeated user would
			// collapse to a single share and silently drop money.
			name:   "exact split with duplicate user fails",
			amount: 100,
			split: models.ExactSplit{Shares: []models.ExactShare{
				{UserID: "A", Amount: 50},
				{UserID: "B", Amount: 25},
				{UserID: "A", Amount: 25},
			}},
			wantErr: true,
		},
		{
			name:    "equal split with duplicate user fails",
			amount:  90,
			split:   models.EqualSplit{UserIDs: []string{"A", "B", "A"}},
			wantErr: true,
		},
		{
			name:   "percentage split",
			amount: 200,
			split: models.PercentageSplit{Shares: []models.PercentShare{
				{UserID: "A", Percent: 60},
				{UserID: "B", Percent: 40},
			}},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				if shares["A"] != 120.00 || shares["B"] != 80.00 {
					t.Errorf("shares = %v, want A:120.00 B:80.00", shares)
				}
			},
		},
		{
			name:   "percentage split assigns leftover cent to last entry",
			amount: 0.05,
			split: models.PercentageSplit{Shares: []models.PercentShare{
				{UserID: "A", Percent: 50},
				{UserID: "B", Percent: 50},
			}},
			validateFunc: func(t *testing.T, shares map[string]float64) {
				// Each half rounds to 0.03; B gives back the extra cent.
				if shares["A"] != 0.03 {
					t.Errorf("A share = %v, want 0.03", shares["A"])
				}
				if shares["B"] != 0.02 {
					t.Errorf("B share = %v, want 0.02", shares["B"])
				}
			},
		},
		{
			name:   "percentages not summing to 100 fail",
			amount: 100,
			split: models.PercentageSplit{Shares: []models.PercentShare{
				{UserID: "A", Percent: 60},
				{UserID: "B", Percent: 50},
			}},
			wantErr: true,
		},
		{
			name:    "percentage split with no entries fails",
			amount:  100,
			split:   models.PercentageSplit{},
			wantErr: true,
		},
		{
			name:   "percentage split with duplicate user fails",
			amount: 100,
			split: models.PercentageSplit{Shares: []models.PercentShare{
				{UserID: "A", Percent: 50},
				{UserID: "A", Percent: 50},
			}},
			wantErr: true,
		},
		{
			name:    "nil split fails",
			amount:  100,
			split:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Allocate(tt.amount, tt.split)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Allocate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidSplit) {
					t.Errorf("error = %v, want ErrInvalidSplit", err)
				}
				return
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, shares)
			}
		})
	}
}

// Conservation: the sum of returned shares, rounded to 2 decimals, must
// equal the rounded amount exactly, not within epsilon.
func TestAllocateConservation(t *testing.T) {
	amounts := []float64{100, 0.01, 0.10, 7.77, 33.10, 123.45, 999.99, 1000}
	splits := []struct {
		name  string
		split models.Split
	}{
		{"equal three ways", models.EqualSplit{UserIDs: []string{"A", "B", "C"}}},
		{"equal seven ways", models.EqualSplit{UserIDs: []string{"a", "b", "c", "d", "e", "f", "g"}}},
		{"uneven percentages", models.PercentageSplit{Shares: []models.PercentShare{
			{UserID: "A", Percent: 33.33},
			{UserID: "B", Percent: 33.33},
			{UserID: "C", Percent: 33.34},
		}}},
	}

	for _, s := range splits {
		for _, amount := range amounts {
			shares, err := Allocate(amount, s.split)
			if err != nil {
				t.Fatalf("%s: Allocate(%v) failed: %v", s.name, amount, err)
			}
			var sum float64
			for _, v := range shares {
				sum += v
			}
			if Round2(sum) != Round2(amount) {
				t.Errorf("%s: shares for %v sum to %v, want %v", s.name, amount, Round2(sum), Round2(amount))
			}
		}
	}
}

func TestAllocateIsPure(t *testing.T) {
	split := models.EqualSplit{UserIDs: []string{"A", "B", "C"}}
	first, err := Allocate(100, split)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	second, err := Allocate(100, split)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	for uid, v := range first {
		if math.Abs(second[uid]-v) > 0 {
			t.Errorf("allocation not deterministic for %s: %v vs %v", uid, v, second[uid])
		}
	}
}
