package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type OfferService struct {
	offers        OfferStore
	contracts     ContractStore
	users         UserStore
	profiles      ProfileStore
	notifications *NotificationService
}

func NewOfferService(
	offers OfferStore,
	contracts ContractStore,
	users UserStore,
	profiles ProfileStore,
	notifications *NotificationService,
) *OfferService {
	return &OfferService{
		offers:        offers,
		contracts:     contracts,
		users:         users,
		profiles:      profiles,
		notifications: notifications,
	}
}

type CreateOfferInput struct {
	DreamerID      uuid.UUID
	Amount         float64
	DurationMonths int
	Type           model.OfferType
	InterestRate   *float64
	Message        string
	Principal      model.Principal
}

func (s *OfferService) Create(ctx context.Context, input CreateOfferInput) (*model.Offer, error) {
	if !input.Principal.IsSponsor() {
		return nil, ErrPermissionDenied
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.DurationMonths <= 0 {
		return nil, fmt.Errorf("%w: duration months must be positive", ErrInvalidInput)
	}
	if input.Type == model.OfferTypeLoan && input.InterestRate == nil {
		return nil, fmt.Errorf("%w: interest rate is required for loan offers", ErrInvalidInput)
	}

	dreamer, err := s.users.GetByID(ctx, input.DreamerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: dreamer", ErrNotFound)
		}
		return nil, err
	}
	if dreamer.UserType != model.UserTypeDreamer {
		return nil, fmt.Errorf("%w: offers can only be sent to dreamers", ErrInvalidInput)
	}

	offer := &model.Offer{
		SponsorID:      input.Principal.UserID,
		DreamerID:      input.DreamerID,
		Amount:         input.Amount,
		DurationMonths: input.DurationMonths,
		Type:           input.Type,
		InterestRate:   input.InterestRate,
		Message:        input.Message,
		Status:         model.OfferStatusPending,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	sponsorName := s.sponsorName(ctx, input.Principal.UserID)
	_, err = s.notifications.Emit(ctx,
		offer.DreamerID,
		"New Sponsor Offer",
		fmt.Sprintf("%s has made you an offer of $%.0f", sponsorName, offer.Amount),
		model.NotificationTypeOffer,
		"offers",
	)
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// List returns offers received by a dreamer or issued by a sponsor.
func (s *OfferService) List(ctx context.Context, principal model.Principal) ([]model.Offer, error) {
	if principal.IsDreamer() {
		return s.offers.ListByDreamer(ctx, principal.UserID)
	}
	return s.offers.ListBySponsor(ctx, principal.UserID)
}

type DecideOfferInput struct {
	OfferID   uuid.UUID
	Decision  model.OfferDecision
	Principal model.Principal
}

type DecideOfferResult struct {
	Offer    model.Offer
	Contract *model.Contract // set only when the offer was accepted
}

// Decide moves a pending offer into a terminal status. Accepting creates
// exactly one contract; the pending precondition is enforced by a
// conditional update at the storage layer so a raced second decision fails
// with ErrInvalidTransition instead of producing a second contract.
func (s *OfferService) Decide(ctx context.Context, input DecideOfferInput) (*DecideOfferResult, error) {
	offer, err := s.offers.GetByID(ctx, input.OfferID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if offer.DreamerID != input.Principal.UserID {
		return nil, ErrPermissionDenied
	}
	if offer.Status.Terminal() {
		return nil, fmt.Errorf("%w: offer is already %s", ErrInvalidTransition, offer.Status)
	}

	updated, err := s.offers.UpdateStatusIfPending(ctx, offer.ID, input.Decision.Status())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: offer is no longer pending", ErrInvalidTransition)
	}
	offer.Status = input.Decision.Status()

	result := &DecideOfferResult{Offer: *offer}
	if input.Decision != model.DecisionAccept {
		return result, nil
	}

	contract := ContractFromOffer(*offer, time.Now().UTC())
	if err := s.contracts.Create(ctx, &contract); err != nil {
		return nil, err
	}
	result.Contract = &contract

	_, err = s.notifications.Emit(ctx,
		offer.DreamerID,
		"Contract Created",
		fmt.Sprintf("Your contract with %s for $%.0f is now active", s.sponsorName(ctx, offer.SponsorID), offer.Amount),
		model.NotificationTypeContract,
		"contracts",
	)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *OfferService) sponsorName(ctx context.Context, sponsorID uuid.UUID) string {
	profile, err := s.profiles.GetSponsorProfile(ctx, sponsorID)
	if err == nil && profile.CompanyName != "" {
		return profile.CompanyName
	}
	return "A sponsor"
}
