package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO notifications (owner_id, title, message, type, read, action_target)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, owner_id, title, message, type, read, action_target, created_at
	`,
		notification.OwnerID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.Read,
		notification.ActionTarget,
	).Scan(notification).Error
}

func (r *NotificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, owner_id, title, message, type, read, action_target, created_at
		FROM notifications
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, ownerID).Scan(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets read=true for the owner's notification. Marking an already
// read notification succeeds; the flag never goes back to false.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE notifications
		SET read = TRUE
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE notifications
		SET read = TRUE
		WHERE owner_id = ? AND NOT read
	`, ownerID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM notifications WHERE owner_id = ? AND NOT read
	`, ownerID).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
