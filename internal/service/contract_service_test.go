package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type contractFixture struct {
	service       *ContractService
	contracts     *fakeContractStore
	users         *fakeUserStore
	notifications *fakeNotificationStore
	sponsor       model.Principal
	dreamer       model.Principal
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()

	users := newFakeUserStore()
	profiles := newFakeProfileStore()
	contracts := newFakeContractStore()
	notifications := newFakeNotificationStore()

	ctx := context.Background()
	sponsor := &model.User{Email: "sponsor@example.com", UserType: model.UserTypeSponsor}
	dreamer := &model.User{Email: "dreamer@example.com", UserType: model.UserTypeDreamer}
	if err := users.Create(ctx, sponsor); err != nil {
		t.Fatalf("create sponsor: %v", err)
	}
	if err := users.Create(ctx, dreamer); err != nil {
		t.Fatalf("create dreamer: %v", err)
	}

	return &contractFixture{
		service:       NewContractService(contracts, users, profiles, NewNotificationService(notifications)),
		contracts:     contracts,
		users:         users,
		notifications: notifications,
		sponsor:       model.Principal{UserID: sponsor.ID, Email: sponsor.Email, UserType: model.UserTypeSponsor},
		dreamer:       model.Principal{UserID: dreamer.ID, Email: dreamer.Email, UserType: model.UserTypeDreamer},
	}
}

func (f *contractFixture) storeContract(t *testing.T, totalPayments, received int) *model.Contract {
	t.Helper()
	contract := &model.Contract{
		OfferID:          uuid.New(),
		SponsorID:        f.sponsor.UserID,
		DreamerID:        f.dreamer.UserID,
		Amount:           1000,
		DurationMonths:   3,
		Type:             model.OfferTypeDonation,
		WeeklyPayment:    ComputeWeeklyPayment(1000, 3),
		TotalPayments:    totalPayments,
		PaymentsReceived: received,
		Status:           model.ContractStatusActive,
		StartDate:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	if received >= totalPayments {
		contract.Status = model.ContractStatusCompleted
	}
	if err := f.contracts.Create(context.Background(), contract); err != nil {
		t.Fatalf("store contract: %v", err)
	}
	return contract
}

func TestRecordPaymentIncrements(t *testing.T) {
	f := newContractFixture(t)
	contract := f.storeContract(t, 3, 0)

	updated, err := f.service.RecordPayment(context.Background(), contract.ID, f.sponsor)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.PaymentsReceived != 1 {
		t.Fatalf("PaymentsReceived = %d, want 1", updated.PaymentsReceived)
	}
	if updated.Status != model.ContractStatusActive {
		t.Fatalf("Status = %q, want active", updated.Status)
	}

	notifications := f.notifications.byOwner(f.dreamer.UserID)
	if len(notifications) != 1 {
		t.Fatalf("dreamer notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Type != model.NotificationTypePayment {
		t.Fatalf("notification type = %q, want payment", notifications[0].Type)
	}
}

func TestRecordPaymentCompletesExactlyOnce(t *testing.T) {
	f := newContractFixture(t)
	ctx := context.Background()
	contract := f.storeContract(t, 3, 2)

	updated, err := f.service.RecordPayment(ctx, contract.ID, f.sponsor)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.Status != model.ContractStatusCompleted {
		t.Fatalf("Status = %q, want completed", updated.Status)
	}
	if updated.PaymentsReceived != 3 {
		t.Fatalf("PaymentsReceived = %d, want 3", updated.PaymentsReceived)
	}

	// Recording against a completed contract is a no-op.
	again, err := f.service.RecordPayment(ctx, contract.ID, f.sponsor)
	if err != nil {
		t.Fatalf("RecordPayment on completed: %v", err)
	}
	if again.PaymentsReceived != 3 {
		t.Fatalf("PaymentsReceived after no-op = %d, want 3", again.PaymentsReceived)
	}

	notifications := f.notifications.byOwner(f.dreamer.UserID)
	if len(notifications) != 1 {
		t.Fatalf("dreamer notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Title != "Contract Completed" {
		t.Fatalf("notification title = %q, want Contract Completed", notifications[0].Title)
	}
}

func TestContractAccessRestrictedToParties(t *testing.T) {
	f := newContractFixture(t)
	contract := f.storeContract(t, 3, 0)

	outsider := model.Principal{UserID: uuid.New(), UserType: model.UserTypeSponsor}
	_, err := f.service.Get(context.Background(), contract.ID, outsider)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("outsider Get err = %v, want ErrPermissionDenied", err)
	}

	_, err = f.service.Get(context.Background(), uuid.New(), f.sponsor)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown contract err = %v, want ErrNotFound", err)
	}
}

func TestScheduleReflectsPayments(t *testing.T) {
	f := newContractFixture(t)
	contract := f.storeContract(t, 4, 2)

	schedule, err := f.service.Schedule(context.Background(), contract.ID, f.dreamer)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(schedule.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4", len(schedule.Entries))
	}
	paid := 0
	for _, entry := range schedule.Entries {
		if entry.Paid {
			paid++
		}
	}
	if paid != 2 {
		t.Fatalf("paid entries = %d, want 2", paid)
	}
}

func TestDocumentResolvesPartyNames(t *testing.T) {
	f := newContractFixture(t)
	contract := f.storeContract(t, 3, 0)

	profiles := newFakeProfileStore()
	f.service.profiles = profiles
	profiles.sponsors[f.sponsor.UserID] = model.SponsorProfile{
		UserID:      f.sponsor.UserID,
		CompanyName: "Acme Capital",
	}
	profiles.dreamers[f.dreamer.UserID] = model.DreamerProfile{
		UserID:   f.dreamer.UserID,
		FullName: "Jamie Doe",
	}

	doc, err := f.service.Document(context.Background(), contract.ID, f.dreamer)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if doc.SponsorName != "Acme Capital" {
		t.Fatalf("SponsorName = %q, want Acme Capital", doc.SponsorName)
	}
	if doc.DreamerName != "Jamie Doe" {
		t.Fatalf("DreamerName = %q, want Jamie Doe", doc.DreamerName)
	}
}
