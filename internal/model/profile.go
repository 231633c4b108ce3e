package model

import (
	"time"

	"github.com/google/uuid"
)

type DreamerProfile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FullName            string
	Location            string
	Bio                 string
	Goal                string
	ExpectedDurationMin int // months
	ExpectedDurationMax int
	WeeklyNeed          float64
	MinTotalFunding     float64 // derived: weekly need x duration x 4.33
	MaxTotalFunding     float64
	Skills              string
	Education           string
	FundingTypes        []string `gorm:"-"` // stored as JSON text
	ProfileCompleted    bool
	UpdatedAt           time.Time
}

type SponsorProfile struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CompanyName           string
	ContactName           string
	Location              string
	Bio                   string
	InvestmentRangeMin    float64
	InvestmentRangeMax    float64
	PreferredFundingTypes []string `gorm:"-"`
	Industries            []string `gorm:"-"`
	ProfileCompleted      bool
	UpdatedAt             time.Time
}

type Preferences struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	EmailNotifications []string
	PrivacySettings    []string
	UpdatedAt          time.Time
}
