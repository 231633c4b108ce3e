package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO milestones (owner_id, title, description, target_date, completed, progress)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, owner_id, title, description, target_date, completed, progress, created_at
	`,
		milestone.OwnerID,
		milestone.Title,
		milestone.Description,
		milestone.TargetDate,
		milestone.Completed,
		milestone.Progress,
	).Scan(milestone).Error
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	var milestone model.Milestone
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, title, description, target_date, completed, progress, created_at
		FROM milestones
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&milestone).Error
	if err != nil {
		return nil, err
	}
	if milestone.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &milestone, nil
}

func (r *MilestoneRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, title, description, target_date, completed, progress, created_at
		FROM milestones
		WHERE owner_id = ?
		ORDER BY target_date ASC NULLS LAST, created_at ASC
	`, ownerID).Scan(&milestones).Error
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *MilestoneRepository) Update(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE milestones
		SET title = ?, description = ?, target_date = ?, completed = ?, progress = ?
		WHERE id = ?
	`,
		milestone.Title,
		milestone.Description,
		milestone.TargetDate,
		milestone.Completed,
		milestone.Progress,
		milestone.ID,
	).Error
}
