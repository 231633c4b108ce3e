package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

func TestEmitRequiresTitle(t *testing.T) {
	service := NewNotificationService(newFakeNotificationStore())

	_, err := service.Emit(context.Background(), uuid.New(), "", "body", model.NotificationTypeSystem, "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	service := NewNotificationService(newFakeNotificationStore())
	ctx := context.Background()
	principal := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	for _, title := range []string{"first", "second", "third"} {
		if _, err := service.Emit(ctx, principal.UserID, title, "", model.NotificationTypeSystem, ""); err != nil {
			t.Fatalf("Emit %q: %v", title, err)
		}
	}

	list, err := service.List(ctx, principal)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	if list[0].Title != "third" || list[2].Title != "first" {
		t.Fatalf("ordering = [%s %s %s], want newest first", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	service := NewNotificationService(newFakeNotificationStore())
	ctx := context.Background()
	principal := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	first, err := service.Emit(ctx, principal.UserID, "a", "", model.NotificationTypeSystem, "")
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if _, err := service.Emit(ctx, principal.UserID, "b", "", model.NotificationTypeSystem, ""); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if _, err := service.Emit(ctx, principal.UserID, "c", "", model.NotificationTypeSystem, ""); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if count, _ := service.UnreadCount(ctx, principal); count != 3 {
		t.Fatalf("unread = %d, want 3", count)
	}

	if err := service.MarkRead(ctx, first.ID, principal); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if count, _ := service.UnreadCount(ctx, principal); count != 2 {
		t.Fatalf("unread after MarkRead = %d, want 2", count)
	}

	// Marking again is harmless.
	if err := service.MarkRead(ctx, first.ID, principal); err != nil {
		t.Fatalf("repeat MarkRead: %v", err)
	}

	updated, err := service.MarkAllRead(ctx, principal)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if updated != 2 {
		t.Fatalf("MarkAllRead updated = %d, want 2", updated)
	}
	if count, _ := service.UnreadCount(ctx, principal); count != 0 {
		t.Fatalf("unread after MarkAllRead = %d, want 0", count)
	}
}

func TestMarkReadScopedToOwner(t *testing.T) {
	service := NewNotificationService(newFakeNotificationStore())
	ctx := context.Background()
	owner := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}
	other := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	notification, err := service.Emit(ctx, owner.UserID, "a", "", model.NotificationTypeSystem, "")
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if err := service.MarkRead(ctx, notification.ID, other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign MarkRead err = %v, want ErrNotFound", err)
	}
	if err := service.MarkRead(ctx, uuid.New(), owner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown MarkRead err = %v, want ErrNotFound", err)
	}
}
