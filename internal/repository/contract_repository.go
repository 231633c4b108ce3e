package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (offer_id, sponsor_id, dreamer_id, amount, duration_months, type,
			interest_rate, weekly_payment, total_payments, payments_received, status, start_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, offer_id, sponsor_id, dreamer_id, amount, duration_months, type,
			interest_rate, weekly_payment, total_payments, payments_received, status, start_date, created_at
	`,
		contract.OfferID,
		contract.SponsorID,
		contract.DreamerID,
		contract.Amount,
		contract.DurationMonths,
		contract.Type,
		contract.InterestRate,
		contract.WeeklyPayment,
		contract.TotalPayments,
		contract.PaymentsReceived,
		contract.Status,
		contract.StartDate,
	).Scan(contract).Error
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, offer_id, sponsor_id, dreamer_id, amount, duration_months, type,
			interest_rate, weekly_payment, total_payments, payments_received, status, start_date, created_at
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

// ListByParty returns contracts where the user is either the dreamer or the
// sponsor.
func (r *ContractRepository) ListByParty(ctx context.Context, userID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, offer_id, sponsor_id, dreamer_id, amount, duration_months, type,
			interest_rate, weekly_payment, total_payments, payments_received, status, start_date, created_at
		FROM contracts
		WHERE dreamer_id = ? OR sponsor_id = ?
		ORDER BY created_at DESC
	`, userID, userID).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// IncrementPayments bumps payments_received from the expected previous value
// and applies the new status in the same statement. Keying the WHERE clause
// on the previous counter makes concurrent increments serialize: only one
// caller advances from a given count.
func (r *ContractRepository) IncrementPayments(ctx context.Context, id uuid.UUID, fromCount int, status model.ContractStatus) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET payments_received = payments_received + 1, status = ?
		WHERE id = ? AND payments_received = ? AND payments_received < total_payments
	`, status, id, fromCount)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
