package service

import (
	"errors"
	"math"
	"testing"
)

func TestComputeFundingRange(t *testing.T) {
	minTotal, maxTotal, err := ComputeFundingRange(200, 6, 12)
	if err != nil {
		t.Fatalf("ComputeFundingRange returned error: %v", err)
	}
	if math.Abs(minTotal-5196) > 1e-9 {
		t.Fatalf("minTotal = %v, want 5196", minTotal)
	}
	if math.Abs(maxTotal-10392) > 1e-9 {
		t.Fatalf("maxTotal = %v, want 10392", maxTotal)
	}
}

func TestComputeFundingRangeValidation(t *testing.T) {
	cases := []struct {
		name       string
		weeklyNeed float64
		minMonths  int
		maxMonths  int
	}{
		{"zero weekly need", 0, 6, 12},
		{"negative weekly need", -50, 6, 12},
		{"zero min months", 200, 0, 12},
		{"negative max months", 200, 6, -1},
		{"min equals max", 200, 6, 6},
		{"min above max", 200, 12, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ComputeFundingRange(tc.weeklyNeed, tc.minMonths, tc.maxMonths)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestComputeWeeklyPayment(t *testing.T) {
	got := ComputeWeeklyPayment(15000, 6)
	want := 15000 / (6 * AvgWeeksPerMonth)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("ComputeWeeklyPayment(15000, 6) = %v, want %v", got, want)
	}

	// 4330 over one month divides evenly by the weekly factor.
	if got := ComputeWeeklyPayment(4330, 1); math.Abs(got-1000) > 1e-9 {
		t.Fatalf("ComputeWeeklyPayment(4330, 1) = %v, want 1000", got)
	}
}

func TestComputeTotalPayments(t *testing.T) {
	cases := []struct {
		months int
		want   int
	}{
		{1, 5},  // 4.33 rounds up
		{6, 26}, // 25.98 rounds up
		{12, 52},
	}
	for _, tc := range cases {
		if got := ComputeTotalPayments(tc.months); got != tc.want {
			t.Fatalf("ComputeTotalPayments(%d) = %d, want %d", tc.months, got, tc.want)
		}
	}
}
