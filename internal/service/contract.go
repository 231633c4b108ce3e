package service

import (
	"time"

	"github.com/sponsoracareer/funding-service/internal/model"
)

// ContractFromOffer derives the binding contract for an accepted offer. The
// financial terms are carried through unchanged and the weekly payment
// schedule is sized from them; the mapping is permanent once the contract is
// stored.
func ContractFromOffer(offer model.Offer, now time.Time) model.Contract {
	return model.Contract{
		OfferID:          offer.ID,
		SponsorID:        offer.SponsorID,
		DreamerID:        offer.DreamerID,
		Amount:           offer.Amount,
		DurationMonths:   offer.DurationMonths,
		Type:             offer.Type,
		InterestRate:     offer.InterestRate,
		WeeklyPayment:    ComputeWeeklyPayment(offer.Amount, offer.DurationMonths),
		TotalPayments:    ComputeTotalPayments(offer.DurationMonths),
		PaymentsReceived: 0,
		Status:           model.ContractStatusActive,
		StartDate:        now,
	}
}

// BuildSchedule expands a contract into its weekly payment schedule, one
// entry per payment starting at the contract start date.
func BuildSchedule(contract model.Contract) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, 0, contract.TotalPayments)
	for n := 1; n <= contract.TotalPayments; n++ {
		entries = append(entries, model.ScheduleEntry{
			Number:  n,
			DueDate: contract.StartDate.AddDate(0, 0, 7*(n-1)),
			Amount:  contract.WeeklyPayment,
			Paid:    n <= contract.PaymentsReceived,
		})
	}
	return entries
}
