package model

import (
	"time"

	"github.com/google/uuid"
)

type OfferType string

const (
	OfferTypeLoan     OfferType = "loan"
	OfferTypeDonation OfferType = "donation"
	OfferTypeEquity   OfferType = "equity"
	OfferTypeOther    OfferType = "other"
)

func ParseOfferType(raw string) (OfferType, bool) {
	switch OfferType(raw) {
	case OfferTypeLoan, OfferTypeDonation, OfferTypeEquity, OfferTypeOther:
		return OfferType(raw), true
	default:
		return "", false
	}
}

type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"
)

// Terminal reports whether the status admits no further transition.
func (s OfferStatus) Terminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusDeclined
}

type OfferDecision string

const (
	DecisionAccept  OfferDecision = "accepted"
	DecisionDecline OfferDecision = "declined"
)

func ParseOfferDecision(raw string) (OfferDecision, bool) {
	switch OfferDecision(raw) {
	case DecisionAccept, DecisionDecline:
		return OfferDecision(raw), true
	default:
		return "", false
	}
}

func (d OfferDecision) Status() OfferStatus {
	if d == DecisionAccept {
		return OfferStatusAccepted
	}
	return OfferStatusDeclined
}

type Offer struct {
	ID             uuid.UUID
	SponsorID      uuid.UUID
	DreamerID      uuid.UUID
	Amount         float64
	DurationMonths int
	Type           OfferType
	InterestRate   *float64 // required for loan offers
	Message        string
	Status         OfferStatus
	SponsorName    string `gorm:"->"` // joined from sponsor_profiles on reads, never written
	CreatedAt      time.Time
}
