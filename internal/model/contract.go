package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
)

type Contract struct {
	ID               uuid.UUID
	OfferID          uuid.UUID
	SponsorID        uuid.UUID
	DreamerID        uuid.UUID
	Amount           float64
	DurationMonths   int
	Type             OfferType
	InterestRate     *float64
	WeeklyPayment    float64
	TotalPayments    int
	PaymentsReceived int
	Status           ContractStatus
	StartDate        time.Time
	CreatedAt        time.Time
}

// Completed reports whether every scheduled payment has been recorded.
func (c Contract) Completed() bool {
	return c.PaymentsReceived >= c.TotalPayments
}

// ContractDocument bundles a contract with the party names needed to render
// the agreement PDF.
type ContractDocument struct {
	Contract    Contract
	SponsorName string
	DreamerName string
}

type ScheduleEntry struct {
	Number  int
	DueDate time.Time
	Amount  float64
	Paid    bool
}

type PaymentSchedule struct {
	Contract    Contract
	SponsorName string
	DreamerName string
	Entries     []ScheduleEntry
}
