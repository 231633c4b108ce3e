package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

func TestSaveDreamerProfileDerivesFundingRange(t *testing.T) {
	service := NewProfileService(newFakeProfileStore())
	ctx := context.Background()
	dreamer := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	profile, err := service.SaveDreamerProfile(ctx, DreamerProfileInput{
		FullName:            "Jamie Doe",
		Goal:                "Bootcamp",
		WeeklyNeed:          200,
		ExpectedDurationMin: 6,
		ExpectedDurationMax: 12,
	}, dreamer)
	if err != nil {
		t.Fatalf("SaveDreamerProfile: %v", err)
	}
	if math.Abs(profile.MinTotalFunding-5196) > 1e-9 {
		t.Fatalf("MinTotalFunding = %v, want 5196", profile.MinTotalFunding)
	}
	if math.Abs(profile.MaxTotalFunding-10392) > 1e-9 {
		t.Fatalf("MaxTotalFunding = %v, want 10392", profile.MaxTotalFunding)
	}
}

func TestSaveDreamerProfileRejectsBadRange(t *testing.T) {
	service := NewProfileService(newFakeProfileStore())
	ctx := context.Background()
	dreamer := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	_, err := service.SaveDreamerProfile(ctx, DreamerProfileInput{
		WeeklyNeed:          200,
		ExpectedDurationMin: 12,
		ExpectedDurationMax: 6,
	}, dreamer)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted range err = %v, want ErrInvalidInput", err)
	}
}

func TestProfileTypeEnforcement(t *testing.T) {
	service := NewProfileService(newFakeProfileStore())
	ctx := context.Background()
	dreamer := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}
	sponsor := model.Principal{UserID: uuid.New(), UserType: model.UserTypeSponsor}

	if _, err := service.SaveDreamerProfile(ctx, DreamerProfileInput{}, sponsor); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("sponsor saving dreamer profile err = %v, want ErrPermissionDenied", err)
	}
	if _, err := service.SaveSponsorProfile(ctx, SponsorProfileInput{}, dreamer); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("dreamer saving sponsor profile err = %v, want ErrPermissionDenied", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	service := NewProfileService(newFakeProfileStore())
	ctx := context.Background()
	dreamer := model.Principal{UserID: uuid.New(), UserType: model.UserTypeDreamer}

	if _, err := service.GetDreamerProfile(ctx, dreamer); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile err = %v, want ErrNotFound", err)
	}
	if _, err := service.GetPreferences(ctx, dreamer); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing preferences err = %v, want ErrNotFound", err)
	}
}

func TestSavePreferencesRoundTrip(t *testing.T) {
	service := NewProfileService(newFakeProfileStore())
	ctx := context.Background()
	principal := model.Principal{UserID: uuid.New(), UserType: model.UserTypeSponsor}

	saved, err := service.SavePreferences(ctx, PreferencesInput{
		EmailNotifications: []string{"offers", "payments"},
		PrivacySettings:    []string{"profile-visible"},
	}, principal)
	if err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if len(saved.EmailNotifications) != 2 || len(saved.PrivacySettings) != 1 {
		t.Fatalf("preferences = %+v, want stored lists back", saved)
	}
}
