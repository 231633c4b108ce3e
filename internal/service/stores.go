package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

// Store interfaces are declared here, where they are consumed; the
// repository package provides the gorm-backed implementations.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	VerifyEmail(ctx context.Context, email, token string) (bool, error)
	SetVerificationToken(ctx context.Context, email, token string) (bool, error)
}

type ProfileStore interface {
	GetDreamerProfile(ctx context.Context, userID uuid.UUID) (*model.DreamerProfile, error)
	UpsertDreamerProfile(ctx context.Context, profile *model.DreamerProfile) error
	GetSponsorProfile(ctx context.Context, userID uuid.UUID) (*model.SponsorProfile, error)
	UpsertSponsorProfile(ctx context.Context, profile *model.SponsorProfile) error
	GetPreferences(ctx context.Context, userID uuid.UUID) (*model.Preferences, error)
	UpsertPreferences(ctx context.Context, preferences *model.Preferences) error
}

type OfferStore interface {
	Create(ctx context.Context, offer *model.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error)
	ListByDreamer(ctx context.Context, dreamerID uuid.UUID) ([]model.Offer, error)
	ListBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]model.Offer, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status model.OfferStatus) (bool, error)
}

type ContractStore interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListByParty(ctx context.Context, userID uuid.UUID) ([]model.Contract, error)
	IncrementPayments(ctx context.Context, id uuid.UUID, fromCount int, status model.ContractStatus) (bool, error)
}

type MilestoneStore interface {
	Create(ctx context.Context, milestone *model.Milestone) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Milestone, error)
	Update(ctx context.Context, milestone *model.Milestone) error
}

type NotificationStore interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
