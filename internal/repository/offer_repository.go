package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO offers (sponsor_id, dreamer_id, amount, duration_months, type, interest_rate, message, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, sponsor_id, dreamer_id, amount, duration_months, type, interest_rate, message, status, created_at
	`,
		offer.SponsorID,
		offer.DreamerID,
		offer.Amount,
		offer.DurationMonths,
		offer.Type,
		offer.InterestRate,
		offer.Message,
		offer.Status,
	).Scan(offer).Error
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id, o.sponsor_id, o.dreamer_id, o.amount, o.duration_months, o.type,
			o.interest_rate, o.message, o.status, o.created_at,
			COALESCE(sp.company_name, '') AS sponsor_name
		FROM offers o
		LEFT JOIN sponsor_profiles sp ON sp.user_id = o.sponsor_id
		WHERE o.id = ?
		LIMIT 1
	`, id).Scan(&offer).Error
	if err != nil {
		return nil, err
	}
	if offer.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &offer, nil
}

func (r *OfferRepository) ListByDreamer(ctx context.Context, dreamerID uuid.UUID) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id, o.sponsor_id, o.dreamer_id, o.amount, o.duration_months, o.type,
			o.interest_rate, o.message, o.status, o.created_at,
			COALESCE(sp.company_name, '') AS sponsor_name
		FROM offers o
		LEFT JOIN sponsor_profiles sp ON sp.user_id = o.sponsor_id
		WHERE o.dreamer_id = ?
		ORDER BY o.created_at DESC
	`, dreamerID).Scan(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) ListBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id, o.sponsor_id, o.dreamer_id, o.amount, o.duration_months, o.type,
			o.interest_rate, o.message, o.status, o.created_at,
			COALESCE(sp.company_name, '') AS sponsor_name
		FROM offers o
		LEFT JOIN sponsor_profiles sp ON sp.user_id = o.sponsor_id
		WHERE o.sponsor_id = ?
		ORDER BY o.created_at DESC
	`, sponsorID).Scan(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// UpdateStatusIfPending moves a pending offer into a terminal status. The
// WHERE clause carries the precondition so that two concurrent decisions on
// the same offer cannot both succeed; the loser sees zero rows.
func (r *OfferRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status model.OfferStatus) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE offers
		SET status = ?
		WHERE id = ? AND status = 'pending'
	`, status, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
