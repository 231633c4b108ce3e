package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type ContractService struct {
	contracts     ContractStore
	users         UserStore
	profiles      ProfileStore
	notifications *NotificationService
}

func NewContractService(
	contracts ContractStore,
	users UserStore,
	profiles ProfileStore,
	notifications *NotificationService,
) *ContractService {
	return &ContractService{
		contracts:     contracts,
		users:         users,
		profiles:      profiles,
		notifications: notifications,
	}
}

func (s *ContractService) List(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	return s.contracts.ListByParty(ctx, principal.UserID)
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if contract.DreamerID != principal.UserID && contract.SponsorID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return contract, nil
}

// RecordPayment increments the contract's payment counter by one. Calling it
// on a completed contract is a no-op, not an error, so over-recording can
// never push the counter past the schedule. The increment is keyed on the
// previous counter value at the storage layer, which serializes concurrent
// calls and makes the active to completed transition happen exactly once.
func (s *ContractService) RecordPayment(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.Get(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	if contract.Completed() {
		return contract, nil
	}

	newCount := contract.PaymentsReceived + 1
	status := model.ContractStatusActive
	if newCount == contract.TotalPayments {
		status = model.ContractStatusCompleted
	}

	updated, err := s.contracts.IncrementPayments(ctx, contract.ID, contract.PaymentsReceived, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Another request advanced the counter first; return current state.
		return s.Get(ctx, id, principal)
	}

	contract.PaymentsReceived = newCount
	contract.Status = status

	if status == model.ContractStatusCompleted {
		_, err = s.notifications.Emit(ctx,
			contract.DreamerID,
			"Contract Completed",
			fmt.Sprintf("All %d payments received, your contract of $%.0f is complete", contract.TotalPayments, contract.Amount),
			model.NotificationTypePayment,
			"contracts",
		)
	} else {
		_, err = s.notifications.Emit(ctx,
			contract.DreamerID,
			"Payment Recorded",
			fmt.Sprintf("Payment %d of %d received", newCount, contract.TotalPayments),
			model.NotificationTypePayment,
			"contracts",
		)
	}
	if err != nil {
		return nil, err
	}

	return contract, nil
}

// Document assembles the data needed to render the contract agreement PDF.
func (s *ContractService) Document(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.ContractDocument, error) {
	contract, err := s.Get(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	return &model.ContractDocument{
		Contract:    *contract,
		SponsorName: s.partyName(ctx, contract.SponsorID),
		DreamerName: s.partyName(ctx, contract.DreamerID),
	}, nil
}

// Schedule expands the contract into its weekly payment schedule for export.
func (s *ContractService) Schedule(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.PaymentSchedule, error) {
	contract, err := s.Get(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	return &model.PaymentSchedule{
		Contract:    *contract,
		SponsorName: s.partyName(ctx, contract.SponsorID),
		DreamerName: s.partyName(ctx, contract.DreamerID),
		Entries:     BuildSchedule(*contract),
	}, nil
}

// partyName resolves a display name for a contract party: profile name
// first, then the user's own name, then email.
func (s *ContractService) partyName(ctx context.Context, userID uuid.UUID) string {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ""
	}

	switch user.UserType {
	case model.UserTypeSponsor:
		if profile, err := s.profiles.GetSponsorProfile(ctx, userID); err == nil && profile.CompanyName != "" {
			return profile.CompanyName
		}
	case model.UserTypeDreamer:
		if profile, err := s.profiles.GetDreamerProfile(ctx, userID); err == nil && profile.FullName != "" {
			return profile.FullName
		}
	}

	if user.FirstName != "" || user.LastName != "" {
		name := user.FirstName
		if user.LastName != "" {
			if name != "" {
				name += " "
			}
			name += user.LastName
		}
		return name
	}
	return user.Email
}
