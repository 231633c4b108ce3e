package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// Emit appends a new unread notification for the owner. Records are
// append-only; nothing downstream ever deletes them.
func (s *NotificationService) Emit(
	ctx context.Context,
	ownerID uuid.UUID,
	title, message string,
	notificationType model.NotificationType,
	actionTarget string,
) (*model.Notification, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: notification title is required", ErrInvalidInput)
	}

	notification := &model.Notification{
		OwnerID:      ownerID,
		Title:        title,
		Message:      message,
		Type:         notificationType,
		Read:         false,
		ActionTarget: actionTarget,
	}
	if err := s.store.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List returns the caller's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, principal model.Principal) ([]model.Notification, error) {
	return s.store.ListByOwner(ctx, principal.UserID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	ok, err := s.store.MarkRead(ctx, id, principal.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, principal model.Principal) (int64, error) {
	return s.store.MarkAllRead(ctx, principal.UserID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, principal model.Principal) (int64, error) {
	return s.store.CountUnread(ctx, principal.UserID)
}
