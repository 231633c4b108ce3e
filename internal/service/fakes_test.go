package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

// In-memory store fakes backing the service tests. Lookups return copies so
// a caller mutating a result cannot bypass the Update path.

type fakeUserStore struct {
	users map[uuid.UUID]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := user
	return &found, nil
}

func (s *fakeUserStore) VerifyEmail(_ context.Context, email, token string) (bool, error) {
	for id, user := range s.users {
		if user.Email == email && user.VerificationToken != nil && *user.VerificationToken == token {
			user.EmailVerified = true
			user.VerificationToken = nil
			s.users[id] = user
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) SetVerificationToken(_ context.Context, email, token string) (bool, error) {
	for id, user := range s.users {
		if user.Email == email {
			user.VerificationToken = &token
			s.users[id] = user
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileStore struct {
	dreamers    map[uuid.UUID]model.DreamerProfile
	sponsors    map[uuid.UUID]model.SponsorProfile
	preferences map[uuid.UUID]model.Preferences
	upsertErr   error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		dreamers:    make(map[uuid.UUID]model.DreamerProfile),
		sponsors:    make(map[uuid.UUID]model.SponsorProfile),
		preferences: make(map[uuid.UUID]model.Preferences),
	}
}

func (s *fakeProfileStore) GetDreamerProfile(_ context.Context, userID uuid.UUID) (*model.DreamerProfile, error) {
	profile, ok := s.dreamers[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := profile
	return &found, nil
}

func (s *fakeProfileStore) UpsertDreamerProfile(_ context.Context, profile *model.DreamerProfile) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.dreamers[profile.UserID] = *profile
	return nil
}

func (s *fakeProfileStore) GetSponsorProfile(_ context.Context, userID uuid.UUID) (*model.SponsorProfile, error) {
	profile, ok := s.sponsors[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := profile
	return &found, nil
}

func (s *fakeProfileStore) UpsertSponsorProfile(_ context.Context, profile *model.SponsorProfile) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.sponsors[profile.UserID] = *profile
	return nil
}

func (s *fakeProfileStore) GetPreferences(_ context.Context, userID uuid.UUID) (*model.Preferences, error) {
	preferences, ok := s.preferences[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := preferences
	return &found, nil
}

func (s *fakeProfileStore) UpsertPreferences(_ context.Context, preferences *model.Preferences) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if preferences.ID == uuid.Nil {
		preferences.ID = uuid.New()
	}
	s.preferences[preferences.UserID] = *preferences
	return nil
}

type fakeOfferStore struct {
	offers map[uuid.UUID]model.Offer
}

func newFakeOfferStore() *fakeOfferStore {
	return &fakeOfferStore{offers: make(map[uuid.UUID]model.Offer)}
}

func (s *fakeOfferStore) Create(_ context.Context, offer *model.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	offer.CreatedAt = time.Now().UTC()
	s.offers[offer.ID] = *offer
	return nil
}

func (s *fakeOfferStore) GetByID(_ context.Context, id uuid.UUID) (*model.Offer, error) {
	offer, ok := s.offers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := offer
	return &found, nil
}

func (s *fakeOfferStore) ListByDreamer(_ context.Context, dreamerID uuid.UUID) ([]model.Offer, error) {
	var out []model.Offer
	for _, offer := range s.offers {
		if offer.DreamerID == dreamerID {
			out = append(out, offer)
		}
	}
	return out, nil
}

func (s *fakeOfferStore) ListBySponsor(_ context.Context, sponsorID uuid.UUID) ([]model.Offer, error) {
	var out []model.Offer
	for _, offer := range s.offers {
		if offer.SponsorID == sponsorID {
			out = append(out, offer)
		}
	}
	return out, nil
}

func (s *fakeOfferStore) UpdateStatusIfPending(_ context.Context, id uuid.UUID, status model.OfferStatus) (bool, error) {
	offer, ok := s.offers[id]
	if !ok || offer.Status != model.OfferStatusPending {
		return false, nil
	}
	offer.Status = status
	s.offers[id] = offer
	return true, nil
}

type fakeContractStore struct {
	contracts map[uuid.UUID]model.Contract
}

func newFakeContractStore() *fakeContractStore {
	return &fakeContractStore{contracts: make(map[uuid.UUID]model.Contract)}
}

func (s *fakeContractStore) Create(_ context.Context, contract *model.Contract) error {
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}
	contract.CreatedAt = time.Now().UTC()
	s.contracts[contract.ID] = *contract
	return nil
}

func (s *fakeContractStore) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, ok := s.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := contract
	return &found, nil
}

func (s *fakeContractStore) ListByParty(_ context.Context, userID uuid.UUID) ([]model.Contract, error) {
	var out []model.Contract
	for _, contract := range s.contracts {
		if contract.DreamerID == userID || contract.SponsorID == userID {
			out = append(out, contract)
		}
	}
	return out, nil
}

func (s *fakeContractStore) IncrementPayments(_ context.Context, id uuid.UUID, fromCount int, status model.ContractStatus) (bool, error) {
	contract, ok := s.contracts[id]
	if !ok || contract.PaymentsReceived != fromCount || fromCount >= contract.TotalPayments {
		return false, nil
	}
	contract.PaymentsReceived++
	contract.Status = status
	s.contracts[id] = contract
	return true, nil
}

type fakeMilestoneStore struct {
	milestones map[uuid.UUID]model.Milestone
}

func newFakeMilestoneStore() *fakeMilestoneStore {
	return &fakeMilestoneStore{milestones: make(map[uuid.UUID]model.Milestone)}
}

func (s *fakeMilestoneStore) Create(_ context.Context, milestone *model.Milestone) error {
	if milestone.ID == uuid.Nil {
		milestone.ID = uuid.New()
	}
	milestone.CreatedAt = time.Now().UTC()
	s.milestones[milestone.ID] = *milestone
	return nil
}

func (s *fakeMilestoneStore) GetByID(_ context.Context, id uuid.UUID) (*model.Milestone, error) {
	milestone, ok := s.milestones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := milestone
	return &found, nil
}

func (s *fakeMilestoneStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Milestone, error) {
	var out []model.Milestone
	for _, milestone := range s.milestones {
		if milestone.OwnerID == ownerID {
			out = append(out, milestone)
		}
	}
	return out, nil
}

func (s *fakeMilestoneStore) Update(_ context.Context, milestone *model.Milestone) error {
	if _, ok := s.milestones[milestone.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.milestones[milestone.ID] = *milestone
	return nil
}

type fakeNotificationStore struct {
	notifications []model.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{}
}

func (s *fakeNotificationStore) Create(_ context.Context, notification *model.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now().UTC().Add(time.Duration(len(s.notifications)) * time.Millisecond)
	s.notifications = append(s.notifications, *notification)
	return nil
}

// ListByOwner returns newest first, matching the SQL ordering.
func (s *fakeNotificationStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Notification, error) {
	var out []model.Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].OwnerID == ownerID {
			out = append(out, s.notifications[i])
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) MarkRead(_ context.Context, id, ownerID uuid.UUID) (bool, error) {
	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].OwnerID == ownerID {
			s.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeNotificationStore) MarkAllRead(_ context.Context, ownerID uuid.UUID) (int64, error) {
	var updated int64
	for i := range s.notifications {
		if s.notifications[i].OwnerID == ownerID && !s.notifications[i].Read {
			s.notifications[i].Read = true
			updated++
		}
	}
	return updated, nil
}

func (s *fakeNotificationStore) CountUnread(_ context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	for _, notification := range s.notifications {
		if notification.OwnerID == ownerID && !notification.Read {
			count++
		}
	}
	return count, nil
}

func (s *fakeNotificationStore) byOwner(ownerID uuid.UUID) []model.Notification {
	out, _ := s.ListByOwner(context.Background(), ownerID)
	return out
}

type fakeMailSender struct {
	sent []string // "email:token"
	err  error
}

func (s *fakeMailSender) SendVerification(_ context.Context, email, token string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, email+":"+token)
	return nil
}
