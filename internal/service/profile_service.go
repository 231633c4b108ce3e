package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

type DreamerProfileInput struct {
	FullName            string
	Location            string
	Bio                 string
	Goal                string
	ExpectedDurationMin int
	ExpectedDurationMax int
	WeeklyNeed          float64
	Skills              string
	Education           string
	FundingTypes        []string
	ProfileCompleted    bool
}

type SponsorProfileInput struct {
	CompanyName           string
	ContactName           string
	Location              string
	Bio                   string
	InvestmentRangeMin    float64
	InvestmentRangeMax    float64
	PreferredFundingTypes []string
	Industries            []string
	ProfileCompleted      bool
}

type PreferencesInput struct {
	EmailNotifications []string
	PrivacySettings    []string
}

// SaveDreamerProfile upserts the dreamer's profile. When the weekly need and
// duration window are both set, the total funding range is recomputed from
// them; the stored range is always derived, never client-supplied.
func (s *ProfileService) SaveDreamerProfile(ctx context.Context, input DreamerProfileInput, principal model.Principal) (*model.DreamerProfile, error) {
	if !principal.IsDreamer() {
		return nil, ErrPermissionDenied
	}

	profile := &model.DreamerProfile{
		UserID:              principal.UserID,
		FullName:            input.FullName,
		Location:            input.Location,
		Bio:                 input.Bio,
		Goal:                input.Goal,
		ExpectedDurationMin: input.ExpectedDurationMin,
		ExpectedDurationMax: input.ExpectedDurationMax,
		WeeklyNeed:          input.WeeklyNeed,
		Skills:              input.Skills,
		Education:           input.Education,
		FundingTypes:        input.FundingTypes,
		ProfileCompleted:    input.ProfileCompleted,
	}

	if input.WeeklyNeed > 0 && input.ExpectedDurationMin > 0 && input.ExpectedDurationMax > 0 {
		minTotal, maxTotal, err := ComputeFundingRange(input.WeeklyNeed, input.ExpectedDurationMin, input.ExpectedDurationMax)
		if err != nil {
			return nil, err
		}
		profile.MinTotalFunding = minTotal
		profile.MaxTotalFunding = maxTotal
	}

	if err := s.profiles.UpsertDreamerProfile(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.GetDreamerProfile(ctx, principal.UserID)
}

func (s *ProfileService) GetDreamerProfile(ctx context.Context, principal model.Principal) (*model.DreamerProfile, error) {
	profile, err := s.profiles.GetDreamerProfile(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) SaveSponsorProfile(ctx context.Context, input SponsorProfileInput, principal model.Principal) (*model.SponsorProfile, error) {
	if !principal.IsSponsor() {
		return nil, ErrPermissionDenied
	}

	profile := &model.SponsorProfile{
		UserID:                principal.UserID,
		CompanyName:           input.CompanyName,
		ContactName:           input.ContactName,
		Location:              input.Location,
		Bio:                   input.Bio,
		InvestmentRangeMin:    input.InvestmentRangeMin,
		InvestmentRangeMax:    input.InvestmentRangeMax,
		PreferredFundingTypes: input.PreferredFundingTypes,
		Industries:            input.Industries,
		ProfileCompleted:      input.ProfileCompleted,
	}
	if err := s.profiles.UpsertSponsorProfile(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.GetSponsorProfile(ctx, principal.UserID)
}

func (s *ProfileService) GetSponsorProfile(ctx context.Context, principal model.Principal) (*model.SponsorProfile, error) {
	profile, err := s.profiles.GetSponsorProfile(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) SavePreferences(ctx context.Context, input PreferencesInput, principal model.Principal) (*model.Preferences, error) {
	preferences := &model.Preferences{
		UserID:             principal.UserID,
		EmailNotifications: input.EmailNotifications,
		PrivacySettings:    input.PrivacySettings,
	}
	if err := s.profiles.UpsertPreferences(ctx, preferences); err != nil {
		return nil, err
	}
	return s.profiles.GetPreferences(ctx, principal.UserID)
}

func (s *ProfileService) GetPreferences(ctx context.Context, principal model.Principal) (*model.Preferences, error) {
	preferences, err := s.profiles.GetPreferences(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return preferences, nil
}
