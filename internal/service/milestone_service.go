package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

// reminderWindow is how far ahead due-date reminders look.
const reminderWindow = 7 * 24 * time.Hour

type MilestoneService struct {
	milestones    MilestoneStore
	profiles      ProfileStore
	notifications *NotificationService
}

func NewMilestoneService(
	milestones MilestoneStore,
	profiles ProfileStore,
	notifications *NotificationService,
) *MilestoneService {
	return &MilestoneService{
		milestones:    milestones,
		profiles:      profiles,
		notifications: notifications,
	}
}

type MilestoneInput struct {
	Title       string
	Description string
	TargetDate  *time.Time
	Completed   bool
	Progress    int
}

func (s *MilestoneService) Create(ctx context.Context, input MilestoneInput, principal model.Principal) (*model.Milestone, error) {
	if !principal.IsDreamer() {
		return nil, ErrPermissionDenied
	}
	if err := validateMilestoneInput(input); err != nil {
		return nil, err
	}

	milestone := &model.Milestone{
		OwnerID:     principal.UserID,
		Title:       input.Title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Completed:   false,
		Progress:    input.Progress,
	}
	if err := s.milestones.Create(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *MilestoneService) Update(ctx context.Context, id uuid.UUID, input MilestoneInput, principal model.Principal) (*model.Milestone, error) {
	if err := validateMilestoneInput(input); err != nil {
		return nil, err
	}

	milestone, err := s.getOwned(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	milestone.Title = input.Title
	milestone.Description = input.Description
	milestone.TargetDate = input.TargetDate
	milestone.Completed = input.Completed
	milestone.Progress = input.Progress
	if err := s.milestones.Update(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// Toggle flips the completion flag. Completing sets progress to 100;
// reopening resets it to 0, discarding any partial progress recorded through
// Update.
func (s *MilestoneService) Toggle(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Milestone, error) {
	milestone, err := s.getOwned(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	milestone.Completed = !milestone.Completed
	if milestone.Completed {
		milestone.Progress = 100
	} else {
		milestone.Progress = 0
	}
	if err := s.milestones.Update(ctx, milestone); err != nil {
		return nil, err
	}

	if milestone.Completed {
		_, err = s.notifications.Emit(ctx,
			milestone.OwnerID,
			"Milestone Completed",
			fmt.Sprintf("You completed %q", milestone.Title),
			model.NotificationTypeMilestone,
			"progress",
		)
		if err != nil {
			return nil, err
		}
	}

	return milestone, nil
}

func (s *MilestoneService) List(ctx context.Context, principal model.Principal) ([]model.Milestone, error) {
	return s.milestones.ListByOwner(ctx, principal.UserID)
}

// GoalProgress recomputes goal completion from the current milestone set.
// The percentage is zero when the dreamer has no goal set or no milestones.
func (s *MilestoneService) GoalProgress(ctx context.Context, principal model.Principal) (model.GoalProgress, error) {
	milestones, err := s.milestones.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return model.GoalProgress{}, err
	}

	progress := model.GoalProgress{TotalMilestones: len(milestones)}
	for _, milestone := range milestones {
		if milestone.Completed {
			progress.CompletedMilestones++
		}
	}

	if !s.hasGoal(ctx, principal.UserID) || progress.TotalMilestones == 0 {
		return progress, nil
	}

	ratio := float64(progress.CompletedMilestones) / float64(progress.TotalMilestones)
	progress.Percentage = int(math.Round(100 * ratio))
	return progress, nil
}

// RemindDue emits a reminder notification for every incomplete milestone due
// within the next seven days and returns how many were sent. A milestone
// already reminded within the window is skipped, so repeated calls do not
// flood the feed.
func (s *MilestoneService) RemindDue(ctx context.Context, principal model.Principal) (int, error) {
	milestones, err := s.milestones.ListByOwner(ctx, principal.UserID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	existing, err := s.notifications.List(ctx, principal)
	if err != nil {
		return 0, err
	}
	reminded := make(map[string]bool)
	cutoff := now.Add(-reminderWindow)
	for _, notification := range existing {
		if notification.Type == model.NotificationTypeReminder && notification.CreatedAt.After(cutoff) {
			reminded[notification.Message] = true
		}
	}

	sent := 0
	for _, milestone := range milestones {
		if milestone.Completed || milestone.TargetDate == nil {
			continue
		}
		due := *milestone.TargetDate
		if due.Before(now) || due.After(now.Add(reminderWindow)) {
			continue
		}

		message := fmt.Sprintf("%q is due on %s", milestone.Title, due.Format("January 2, 2006"))
		if reminded[message] {
			continue
		}

		_, err = s.notifications.Emit(ctx,
			principal.UserID,
			"Milestone Due Soon",
			message,
			model.NotificationTypeReminder,
			"progress",
		)
		if err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func (s *MilestoneService) getOwned(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Milestone, error) {
	milestone, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if milestone.OwnerID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return milestone, nil
}

func (s *MilestoneService) hasGoal(ctx context.Context, userID uuid.UUID) bool {
	profile, err := s.profiles.GetDreamerProfile(ctx, userID)
	return err == nil && profile.Goal != ""
}

func validateMilestoneInput(input MilestoneInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.Progress < 0 || input.Progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}
