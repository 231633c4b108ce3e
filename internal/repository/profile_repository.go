package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type dreamerProfileRow struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	FullName            string
	Location            string
	Bio                 string
	Goal                string
	ExpectedDurationMin int
	ExpectedDurationMax int
	WeeklyNeed          float64
	MinTotalFunding     float64
	MaxTotalFunding     float64
	Skills              string
	Education           string
	FundingTypes        string
	ProfileCompleted    bool
	UpdatedAt           time.Time
}

func (r *ProfileRepository) GetDreamerProfile(ctx context.Context, userID uuid.UUID) (*model.DreamerProfile, error) {
	var row dreamerProfileRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, COALESCE(full_name, '') AS full_name, COALESCE(location, '') AS location,
			COALESCE(bio, '') AS bio, COALESCE(goal, '') AS goal,
			COALESCE(expected_duration_min, 0) AS expected_duration_min,
			COALESCE(expected_duration_max, 0) AS expected_duration_max,
			COALESCE(weekly_need, 0) AS weekly_need,
			COALESCE(min_total_funding, 0) AS min_total_funding,
			COALESCE(max_total_funding, 0) AS max_total_funding,
			COALESCE(skills, '') AS skills, COALESCE(education, '') AS education,
			funding_types, profile_completed, updated_at
		FROM dreamer_profiles
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	profile := model.DreamerProfile{
		ID:                  row.ID,
		UserID:              row.UserID,
		FullName:            row.FullName,
		Location:            row.Location,
		Bio:                 row.Bio,
		Goal:                row.Goal,
		ExpectedDurationMin: row.ExpectedDurationMin,
		ExpectedDurationMax: row.ExpectedDurationMax,
		WeeklyNeed:          row.WeeklyNeed,
		MinTotalFunding:     row.MinTotalFunding,
		MaxTotalFunding:     row.MaxTotalFunding,
		Skills:              row.Skills,
		Education:           row.Education,
		FundingTypes:        decodeList(row.FundingTypes),
		ProfileCompleted:    row.ProfileCompleted,
		UpdatedAt:           row.UpdatedAt,
	}
	return &profile, nil
}

// UpsertDreamerProfile inserts the profile or replaces the existing row for
// the user, one profile per dreamer.
func (r *ProfileRepository) UpsertDreamerProfile(ctx context.Context, profile *model.DreamerProfile) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO dreamer_profiles (user_id, full_name, location, bio, goal,
			expected_duration_min, expected_duration_max, weekly_need,
			min_total_funding, max_total_funding, skills, education, funding_types, profile_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			goal = EXCLUDED.goal,
			expected_duration_min = EXCLUDED.expected_duration_min,
			expected_duration_max = EXCLUDED.expected_duration_max,
			weekly_need = EXCLUDED.weekly_need,
			min_total_funding = EXCLUDED.min_total_funding,
			max_total_funding = EXCLUDED.max_total_funding,
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			funding_types = EXCLUDED.funding_types,
			profile_completed = EXCLUDED.profile_completed,
			updated_at = NOW()
	`,
		profile.UserID,
		profile.FullName,
		profile.Location,
		profile.Bio,
		profile.Goal,
		profile.ExpectedDurationMin,
		profile.ExpectedDurationMax,
		profile.WeeklyNeed,
		profile.MinTotalFunding,
		profile.MaxTotalFunding,
		profile.Skills,
		profile.Education,
		encodeList(profile.FundingTypes),
		profile.ProfileCompleted,
	).Error
}

type sponsorProfileRow struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CompanyName           string
	ContactName           string
	Location              string
	Bio                   string
	InvestmentRangeMin    float64
	InvestmentRangeMax    float64
	PreferredFundingTypes string
	Industries            string
	ProfileCompleted      bool
	UpdatedAt             time.Time
}

func (r *ProfileRepository) GetSponsorProfile(ctx context.Context, userID uuid.UUID) (*model.SponsorProfile, error) {
	var row sponsorProfileRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, COALESCE(company_name, '') AS company_name,
			COALESCE(contact_name, '') AS contact_name, COALESCE(location, '') AS location,
			COALESCE(bio, '') AS bio,
			COALESCE(investment_range_min, 0) AS investment_range_min,
			COALESCE(investment_range_max, 0) AS investment_range_max,
			preferred_funding_types, industries, profile_completed, updated_at
		FROM sponsor_profiles
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	profile := model.SponsorProfile{
		ID:                    row.ID,
		UserID:                row.UserID,
		CompanyName:           row.CompanyName,
		ContactName:           row.ContactName,
		Location:              row.Location,
		Bio:                   row.Bio,
		InvestmentRangeMin:    row.InvestmentRangeMin,
		InvestmentRangeMax:    row.InvestmentRangeMax,
		PreferredFundingTypes: decodeList(row.PreferredFundingTypes),
		Industries:            decodeList(row.Industries),
		ProfileCompleted:      row.ProfileCompleted,
		UpdatedAt:             row.UpdatedAt,
	}
	return &profile, nil
}

func (r *ProfileRepository) UpsertSponsorProfile(ctx context.Context, profile *model.SponsorProfile) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO sponsor_profiles (user_id, company_name, contact_name, location, bio,
			investment_range_min, investment_range_max, preferred_funding_types, industries, profile_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			contact_name = EXCLUDED.contact_name,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			investment_range_min = EXCLUDED.investment_range_min,
			investment_range_max = EXCLUDED.investment_range_max,
			preferred_funding_types = EXCLUDED.preferred_funding_types,
			industries = EXCLUDED.industries,
			profile_completed = EXCLUDED.profile_completed,
			updated_at = NOW()
	`,
		profile.UserID,
		profile.CompanyName,
		profile.ContactName,
		profile.Location,
		profile.Bio,
		profile.InvestmentRangeMin,
		profile.InvestmentRangeMax,
		encodeList(profile.PreferredFundingTypes),
		encodeList(profile.Industries),
		profile.ProfileCompleted,
	).Error
}

type preferencesRow struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	EmailNotifications string
	PrivacySettings    string
	UpdatedAt          time.Time
}

func (r *ProfileRepository) GetPreferences(ctx context.Context, userID uuid.UUID) (*model.Preferences, error) {
	var row preferencesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, email_notifications, privacy_settings, updated_at
		FROM user_preferences
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	preferences := model.Preferences{
		ID:                 row.ID,
		UserID:             row.UserID,
		EmailNotifications: decodeList(row.EmailNotifications),
		PrivacySettings:    decodeList(row.PrivacySettings),
		UpdatedAt:          row.UpdatedAt,
	}
	return &preferences, nil
}

func (r *ProfileRepository) UpsertPreferences(ctx context.Context, preferences *model.Preferences) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO user_preferences (user_id, email_notifications, privacy_settings)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			email_notifications = EXCLUDED.email_notifications,
			privacy_settings = EXCLUDED.privacy_settings,
			updated_at = NOW()
	`,
		preferences.UserID,
		encodeList(preferences.EmailNotifications),
		encodeList(preferences.PrivacySettings),
	).Error
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func decodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}
