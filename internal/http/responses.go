package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type userResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	UserType      string    `json:"userType"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Location      string    `json:"location,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Email:         user.Email,
		UserType:      string(user.UserType),
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Location:      user.Location,
		Phone:         user.Phone,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

type offerResponse struct {
	ID             uuid.UUID `json:"id"`
	SponsorID      uuid.UUID `json:"sponsorId"`
	DreamerID      uuid.UUID `json:"dreamerId"`
	Amount         float64   `json:"amount"`
	DurationMonths int       `json:"durationMonths"`
	Type           string    `json:"type"`
	InterestRate   *float64  `json:"interestRate,omitempty"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"`
	SponsorName    string    `json:"sponsorName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toOfferResponse(offer model.Offer) offerResponse {
	return offerResponse{
		ID:             offer.ID,
		SponsorID:      offer.SponsorID,
		DreamerID:      offer.DreamerID,
		Amount:         offer.Amount,
		DurationMonths: offer.DurationMonths,
		Type:           string(offer.Type),
		InterestRate:   offer.InterestRate,
		Message:        offer.Message,
		Status:         string(offer.Status),
		SponsorName:    offer.SponsorName,
		CreatedAt:      offer.CreatedAt,
	}
}

func toOfferResponses(offers []model.Offer) []offerResponse {
	out := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		out = append(out, toOfferResponse(offer))
	}
	return out
}

type contractResponse struct {
	ID               uuid.UUID `json:"id"`
	OfferID          uuid.UUID `json:"offerId"`
	SponsorID        uuid.UUID `json:"sponsorId"`
	DreamerID        uuid.UUID `json:"dreamerId"`
	Amount           float64   `json:"amount"`
	DurationMonths   int       `json:"durationMonths"`
	Type             string    `json:"type"`
	InterestRate     *float64  `json:"interestRate,omitempty"`
	WeeklyPayment    float64   `json:"weeklyPayment"`
	TotalPayments    int       `json:"totalPayments"`
	PaymentsReceived int       `json:"paymentsReceived"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"startDate"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toContractResponse(contract model.Contract) contractResponse {
	return contractResponse{
		ID:               contract.ID,
		OfferID:          contract.OfferID,
		SponsorID:        contract.SponsorID,
		DreamerID:        contract.DreamerID,
		Amount:           contract.Amount,
		DurationMonths:   contract.DurationMonths,
		Type:             string(contract.Type),
		InterestRate:     contract.InterestRate,
		WeeklyPayment:    contract.WeeklyPayment,
		TotalPayments:    contract.TotalPayments,
		PaymentsReceived: contract.PaymentsReceived,
		Status:           string(contract.Status),
		StartDate:        contract.StartDate,
		CreatedAt:        contract.CreatedAt,
	}
}

func toContractResponses(contracts []model.Contract) []contractResponse {
	out := make([]contractResponse, 0, len(contracts))
	for _, contract := range contracts {
		out = append(out, toContractResponse(contract))
	}
	return out
}

type milestoneResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Completed   bool       `json:"completed"`
	Progress    int        `json:"progress"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toMilestoneResponse(milestone model.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:          milestone.ID,
		Title:       milestone.Title,
		Description: milestone.Description,
		TargetDate:  milestone.TargetDate,
		Completed:   milestone.Completed,
		Progress:    milestone.Progress,
		CreatedAt:   milestone.CreatedAt,
	}
}

func toMilestoneResponses(milestones []model.Milestone) []milestoneResponse {
	out := make([]milestoneResponse, 0, len(milestones))
	for _, milestone := range milestones {
		out = append(out, toMilestoneResponse(milestone))
	}
	return out
}

type notificationResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	Read         bool      `json:"read"`
	ActionTarget string    `json:"actionTarget,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toNotificationResponses(notifications []model.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:           n.ID,
			Title:        n.Title,
			Message:      n.Message,
			Type:         string(n.Type),
			Read:         n.Read,
			ActionTarget: n.ActionTarget,
			CreatedAt:    n.CreatedAt,
		})
	}
	return out
}

type dreamerProfileResponse struct {
	UserID              uuid.UUID `json:"userId"`
	FullName            string    `json:"fullName"`
	Location            string    `json:"location,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	Goal                string    `json:"goal,omitempty"`
	ExpectedDurationMin int       `json:"expectedDurationMin"`
	ExpectedDurationMax int       `json:"expectedDurationMax"`
	WeeklyNeed          float64   `json:"weeklyNeed"`
	MinTotalFunding     float64   `json:"minTotalFunding"`
	MaxTotalFunding     float64   `json:"maxTotalFunding"`
	Skills              string    `json:"skills,omitempty"`
	Education           string    `json:"education,omitempty"`
	FundingTypes        []string  `json:"fundingTypes"`
	ProfileCompleted    bool      `json:"profileCompleted"`
}

func toDreamerProfileResponse(profile model.DreamerProfile) dreamerProfileResponse {
	return dreamerProfileResponse{
		UserID:              profile.UserID,
		FullName:            profile.FullName,
		Location:            profile.Location,
		Bio:                 profile.Bio,
		Goal:                profile.Goal,
		ExpectedDurationMin: profile.ExpectedDurationMin,
		ExpectedDurationMax: profile.ExpectedDurationMax,
		WeeklyNeed:          profile.WeeklyNeed,
		MinTotalFunding:     profile.MinTotalFunding,
		MaxTotalFunding:     profile.MaxTotalFunding,
		Skills:              profile.Skills,
		Education:           profile.Education,
		FundingTypes:        profile.FundingTypes,
		ProfileCompleted:    profile.ProfileCompleted,
	}
}

type sponsorProfileResponse struct {
	UserID                uuid.UUID `json:"userId"`
	CompanyName           string    `json:"companyName"`
	ContactName           string    `json:"contactName,omitempty"`
	Location              string    `json:"location,omitempty"`
	Bio                   string    `json:"bio,omitempty"`
	InvestmentRangeMin    float64   `json:"investmentRangeMin"`
	InvestmentRangeMax    float64   `json:"investmentRangeMax"`
	PreferredFundingTypes []string  `json:"preferredFundingTypes"`
	Industries            []string  `json:"industries"`
	ProfileCompleted      bool      `json:"profileCompleted"`
}

func toSponsorProfileResponse(profile model.SponsorProfile) sponsorProfileResponse {
	return sponsorProfileResponse{
		UserID:                profile.UserID,
		CompanyName:           profile.CompanyName,
		ContactName:           profile.ContactName,
		Location:              profile.Location,
		Bio:                   profile.Bio,
		InvestmentRangeMin:    profile.InvestmentRangeMin,
		InvestmentRangeMax:    profile.InvestmentRangeMax,
		PreferredFundingTypes: profile.PreferredFundingTypes,
		Industries:            profile.Industries,
		ProfileCompleted:      profile.ProfileCompleted,
	}
}

type preferencesResponse struct {
	UserID             uuid.UUID `json:"userId"`
	EmailNotifications []string  `json:"emailNotifications"`
	PrivacySettings    []string  `json:"privacySettings"`
}

func toPreferencesResponse(prefs model.Preferences) preferencesResponse {
	return preferencesResponse{
		UserID:             prefs.UserID,
		EmailNotifications: prefs.EmailNotifications,
		PrivacySettings:    prefs.PrivacySettings,
	}
}
