package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeOffer     NotificationType = "offer"
	NotificationTypeReminder  NotificationType = "reminder"
	NotificationTypeWelcome   NotificationType = "welcome"
	NotificationTypeContract  NotificationType = "contract"
	NotificationTypePayment   NotificationType = "payment"
	NotificationTypeMilestone NotificationType = "milestone"
	NotificationTypeSystem    NotificationType = "system"
)

// Notification is an append-only user-facing record. Only the read flag is
// ever mutated, and only from false to true.
type Notification struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Message      string
	Type         NotificationType
	Read         bool
	ActionTarget string // dashboard section the notification links to
	CreatedAt    time.Time
}
