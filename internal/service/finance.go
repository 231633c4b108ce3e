package service

import (
	"fmt"
	"math"
)

// AvgWeeksPerMonth converts calendar months into payment weeks. All funding
// and schedule math in the service uses this fixed constant.
const AvgWeeksPerMonth = 4.33

// ComputeFundingRange derives the total funding range from a weekly need and
// an expected duration window in months. No currency rounding is applied;
// display formatting is the caller's concern.
func ComputeFundingRange(weeklyNeed float64, minMonths, maxMonths int) (minTotal, maxTotal float64, err error) {
	if weeklyNeed <= 0 {
		return 0, 0, fmt.Errorf("%w: weekly need must be positive", ErrInvalidInput)
	}
	if minMonths <= 0 || maxMonths <= 0 {
		return 0, 0, fmt.Errorf("%w: duration months must be positive", ErrInvalidInput)
	}
	if minMonths >= maxMonths {
		return 0, 0, fmt.Errorf("%w: minimum duration must be less than maximum duration", ErrInvalidInput)
	}

	minTotal = weeklyNeed * float64(minMonths) * AvgWeeksPerMonth
	maxTotal = weeklyNeed * float64(maxMonths) * AvgWeeksPerMonth
	return minTotal, maxTotal, nil
}

// ComputeWeeklyPayment splits a funding amount across the weekly schedule of
// the given duration.
func ComputeWeeklyPayment(amount float64, months int) float64 {
	return amount / (float64(months) * AvgWeeksPerMonth)
}

// ComputeTotalPayments returns the number of weekly payments in a schedule
// of the given duration.
func ComputeTotalPayments(months int) int {
	return int(math.Ceil(float64(months) * AvgWeeksPerMonth))
}
